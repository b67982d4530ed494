package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pageza/ingrecipe/backend/internal/model"
	"github.com/pageza/ingrecipe/backend/internal/service"
	"github.com/pageza/ingrecipe/backend/internal/types"
)

// MatchHandler serves ingredient match requests
type MatchHandler struct {
	matchService service.IMatchService
	images       ImageResolver
	logger       *zap.Logger
}

// NewMatchHandler creates a new MatchHandler. images may be nil.
func NewMatchHandler(matchService service.IMatchService, images ImageResolver, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
		images:       images,
		logger:       logger,
	}
}

// RegisterRoutes registers the versioned match route
func (h *MatchHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/match", h.Match)
}

// Match ranks recipes against the posted ingredients and dietary filter
func (h *MatchHandler) Match(c *gin.Context) {
	var req types.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at least one ingredient is required"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !model.IsNoDietaryFilter(req.Dietary) && !model.IsKnownDietary(req.Dietary) {
		h.logger.Info("unrecognized dietary filter", zap.String("dietary", req.Dietary))
	}

	results, err := h.matchService.Rank(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("error fetching recipes", zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	for i := range results {
		resolveImage(c.Request.Context(), h.images, &results[i].Recipe)
	}

	c.JSON(http.StatusOK, results)
}
