package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/ingrecipe/backend/internal/model"
	"github.com/pageza/ingrecipe/backend/internal/types"
)

// RecipeFinder is the read-only view of the recipe store the services need
type RecipeFinder interface {
	FindAll(ctx context.Context) ([]model.Recipe, error)
	FindByDietary(ctx context.Context, category string) ([]model.Recipe, error)
}

// RecipeLookup extends RecipeFinder with single-record access
type RecipeLookup interface {
	RecipeFinder
	FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
}

// IMatchService defines the interface for ingredient matching
type IMatchService interface {
	Rank(ctx context.Context, req types.MatchRequest) ([]types.ScoredRecipe, error)
}

// IRecipeService defines the interface for read-only recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context, dietary string) ([]model.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
}
