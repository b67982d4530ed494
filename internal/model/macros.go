package model

// NutritionalInfo represents nutrition information for a recipe.
type NutritionalInfo struct {
	Calories float64 `gorm:"type:float" json:"calories"`
	Protein  float64 `gorm:"type:float" json:"protein"`
	Carbs    float64 `gorm:"type:float" json:"carbs"`
}
