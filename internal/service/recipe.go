package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/ingrecipe/backend/internal/model"
)

// RecipeService handles read-only recipe operations
type RecipeService struct {
	store RecipeLookup
}

// Ensure RecipeService implements IRecipeService
var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(store RecipeLookup) *RecipeService {
	return &RecipeService{store: store}
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	return s.store.FindByID(ctx, id)
}

// ListRecipes lists every recipe, or only those in a dietary category when
// dietary is set to something other than "None"
func (s *RecipeService) ListRecipes(ctx context.Context, dietary string) ([]model.Recipe, error) {
	if model.IsNoDietaryFilter(dietary) {
		return s.store.FindAll(ctx)
	}
	return s.store.FindByDietary(ctx, model.NormalizeDietary(dietary))
}
