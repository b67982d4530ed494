package types

import "github.com/pageza/ingrecipe/backend/internal/model"

// ScoredRecipe is a recipe annotated with its overlap against a match
// request. Diff is MissingCount - MatchCount; lower is a better match.
type ScoredRecipe struct {
	model.Recipe
	MatchCount   int `json:"matchCount"`
	MissingCount int `json:"missingCount"`
	Diff         int `json:"diff"`
}
