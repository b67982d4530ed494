package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pageza/ingrecipe/backend/internal/metrics"
	"github.com/pageza/ingrecipe/backend/internal/model"
	"github.com/pageza/ingrecipe/backend/internal/types"
)

// DefaultMatchLimit is the number of recipes a match returns at most
const DefaultMatchLimit = 4

// ErrStoreUnavailable is returned when candidate recipes cannot be retrieved
var ErrStoreUnavailable = errors.New("recipe store unavailable")

// MatchService ranks stored recipes by how well their ingredients overlap a
// requested ingredient set. It holds no per-request state.
type MatchService struct {
	store   RecipeFinder
	limit   int
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// Ensure MatchService implements IMatchService
var _ IMatchService = (*MatchService)(nil)

// NewMatchService creates a new MatchService. A limit outside
// 1..DefaultMatchLimit selects DefaultMatchLimit; logger and m may be nil.
func NewMatchService(store RecipeFinder, limit int, logger *zap.Logger, m *metrics.Metrics) *MatchService {
	if limit <= 0 || limit > DefaultMatchLimit {
		limit = DefaultMatchLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchService{
		store:   store,
		limit:   limit,
		logger:  logger,
		metrics: m,
	}
}

// Rank returns at most the configured number of recipes sharing at least one
// ingredient with the request, best match first. An empty ingredient set
// yields an empty result without touching the store. A store failure fails
// the whole call.
func (s *MatchService) Rank(ctx context.Context, req types.MatchRequest) ([]types.ScoredRecipe, error) {
	requested := IngredientSet(req.Ingredients)
	if len(requested) == 0 {
		s.metrics.ObserveMatch(metrics.OutcomeEmpty, 0, 0)
		return []types.ScoredRecipe{}, nil
	}

	candidates, err := s.candidates(ctx, req.Dietary)
	if err != nil {
		s.logger.Error("failed to fetch candidate recipes",
			zap.String("dietary", req.Dietary),
			zap.Error(err),
		)
		s.metrics.ObserveMatch(metrics.OutcomeError, 0, 0)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	ranked := RankCandidates(candidates, requested, s.limit)

	outcome := metrics.OutcomeMatched
	if len(ranked) == 0 {
		outcome = metrics.OutcomeNoMatch
	}
	s.metrics.ObserveMatch(outcome, len(candidates), len(ranked))
	s.logger.Debug("ranked recipes",
		zap.Int("requested", len(requested)),
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(ranked)),
	)

	return ranked, nil
}

func (s *MatchService) candidates(ctx context.Context, dietary string) ([]model.Recipe, error) {
	if model.IsNoDietaryFilter(dietary) {
		return s.store.FindAll(ctx)
	}
	return s.store.FindByDietary(ctx, model.NormalizeDietary(dietary))
}

// IngredientSet collapses a list of ingredient names into a set. Surrounding
// whitespace is ignored and blank names are dropped; comparison is otherwise
// exact. Recipes are scored on this set too, so a duplicated or padded
// ingredient counts once. A recipe listing "Onion" twice has one missing
// ingredient fewer than a raw length count would give it.
func IngredientSet(ingredients []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ingredients))
	for _, ing := range ingredients {
		if name := strings.TrimSpace(ing); name != "" {
			set[name] = struct{}{}
		}
	}
	return set
}

// RankCandidates scores candidates against the requested set, drops those
// with no overlap, orders the rest by ascending diff and keeps the first
// limit. Candidates with equal diff keep their relative input order.
func RankCandidates(candidates []model.Recipe, requested map[string]struct{}, limit int) []types.ScoredRecipe {
	scored := make([]types.ScoredRecipe, 0, len(candidates))
	for _, recipe := range candidates {
		if s, ok := scoreRecipe(recipe, requested); ok {
			scored = append(scored, s)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Diff < scored[j].Diff
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// scoreRecipe reports false when the recipe shares no ingredient with the request
func scoreRecipe(recipe model.Recipe, requested map[string]struct{}) (types.ScoredRecipe, bool) {
	own := IngredientSet(recipe.Ingredients)

	matched := 0
	for name := range requested {
		if _, ok := own[name]; ok {
			matched++
		}
	}
	if matched == 0 {
		return types.ScoredRecipe{}, false
	}

	missing := len(own) - matched
	return types.ScoredRecipe{
		Recipe:       recipe,
		MatchCount:   matched,
		MissingCount: missing,
		Diff:         missing - matched,
	}, true
}
