package types

// MatchRequest is the body of a recipe match request. Ingredients is a set:
// order does not matter and duplicates collapse. Dietary may be empty or
// "None" for no filtering.
type MatchRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
	Dietary     string   `json:"dietary"`
}
