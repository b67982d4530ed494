package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pageza/ingrecipe/backend/internal/model"
)

// fakeStore is an in-memory RecipeLookup that records which query was used
type fakeStore struct {
	mu      sync.Mutex
	recipes []model.Recipe
	err     error
	calls   []string
}

func newFakeStore(recipes ...model.Recipe) *fakeStore {
	return &fakeStore{recipes: recipes}
}

func (f *fakeStore) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeStore) FindAll(ctx context.Context) ([]model.Recipe, error) {
	f.record("all")
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.Recipe(nil), f.recipes...), nil
}

func (f *fakeStore) FindByDietary(ctx context.Context, category string) ([]model.Recipe, error) {
	f.record("dietary:" + category)
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Recipe
	for _, r := range f.recipes {
		if model.NormalizeDietary(r.Dietary) == model.NormalizeDietary(category) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	f.record("id")
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			r := f.recipes[i]
			return &r, nil
		}
	}
	return nil, errNotFound
}

func recipe(name, dietary string, ingredients ...string) model.Recipe {
	return model.Recipe{
		ID:          uuid.New(),
		Name:        name,
		Dietary:     dietary,
		Ingredients: model.JSONBStringArray(ingredients),
	}
}
