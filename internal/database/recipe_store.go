package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/ingrecipe/backend/internal/model"
)

// ErrRecipeNotFound is returned when a lookup by ID matches no recipe
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeStore provides read-only access to stored recipes. Every query
// returns recipes in insertion order (created_at, then id) so callers get a
// stable retrieval order across identical requests.
type RecipeStore struct {
	db *gorm.DB
}

// NewRecipeStore creates a new recipe store
func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

func (s *RecipeStore) ordered(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Order("created_at ASC").Order("id ASC")
}

// FindAll returns every recipe
func (s *RecipeStore) FindAll(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := s.ordered(ctx).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindByDietary returns recipes whose dietary category equals category,
// ignoring case and surrounding whitespace on both sides
func (s *RecipeStore) FindByDietary(ctx context.Context, category string) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.ordered(ctx).
		Where("LOWER(TRIM(dietary)) = ?", model.NormalizeDietary(category)).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindByID returns a single recipe
func (s *RecipeStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Ping checks that the backing database is reachable
func (s *RecipeStore) Ping(ctx context.Context) error {
	return HealthCheck(ctx, s.db)
}

// CreateMissing inserts the recipes whose name is not already stored and
// reports how many were written. Names are compared exactly. Recipes are
// stamped a millisecond apart so their retrieval order follows the input.
func (s *RecipeStore) CreateMissing(ctx context.Context, recipes []model.Recipe) (int, error) {
	inserted := 0
	now := time.Now().UTC()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range recipes {
			var count int64
			if err := tx.Model(&model.Recipe{}).Where("name = ?", recipes[i].Name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if recipes[i].CreatedAt.IsZero() {
				recipes[i].CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
			}
			if err := tx.Create(&recipes[i]).Error; err != nil {
				return fmt.Errorf("failed to insert recipe %q: %w", recipes[i].Name, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
