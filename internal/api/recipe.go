package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/ingrecipe/backend/internal/database"
	"github.com/pageza/ingrecipe/backend/internal/service"
)

// RecipeHandler serves read-only recipe lookups
type RecipeHandler struct {
	recipeService service.IRecipeService
	images        ImageResolver
	logger        *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler. images may be nil.
func NewRecipeHandler(recipeService service.IRecipeService, images ImageResolver, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		images:        images,
		logger:        logger,
	}
}

// RegisterRoutes registers the recipe read routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
	}
}

// ListRecipes returns stored recipes, filtered by the optional dietary query
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), c.Query("dietary"))
	if err != nil {
		h.logger.Error("failed to list recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	for i := range recipes {
		resolveImage(c.Request.Context(), h.images, &recipes[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
	})
}

// GetRecipe returns a single recipe by ID
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		h.logger.Error("failed to fetch recipe", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}

	resolveImage(c.Request.Context(), h.images, recipe)
	c.JSON(http.StatusOK, recipe)
}
