package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/ingrecipe/backend/config"
	"github.com/pageza/ingrecipe/backend/internal/api"
	"github.com/pageza/ingrecipe/backend/internal/database"
	"github.com/pageza/ingrecipe/backend/internal/metrics"
	"github.com/pageza/ingrecipe/backend/internal/model"
	"github.com/pageza/ingrecipe/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.New(&config.Config{DBDriver: config.DriverSQLite, DBPath: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.RunMigrations(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func setupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	logger := zap.NewNop()
	m := metrics.New()
	store := database.NewRecipeStore(db)

	return SetupRouter(Dependencies{
		MatchHandler:   api.NewMatchHandler(service.NewMatchService(store, service.DefaultMatchLimit, logger, m), nil, logger),
		RecipeHandler:  api.NewRecipeHandler(service.NewRecipeService(store), nil, logger),
		Health:         store,
		Metrics:        m,
		AllowedOrigins: []string{"https://ingrecipe.netlify.app"},
		Logger:         logger,
	})
}

func seedRecipes(t *testing.T, db *gorm.DB, recipes ...model.Recipe) {
	t.Helper()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range recipes {
		recipes[i].CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, db.Create(&recipes[i]).Error)
	}
}

type matchResult struct {
	Name         string `json:"name"`
	Dietary      string `json:"dietary"`
	MatchCount   int    `json:"matchCount"`
	MissingCount int    `json:"missingCount"`
	Diff         int    `json:"diff"`
}

func postMatch(t *testing.T, router http.Handler, body string) (int, []matchResult) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/recipe", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var results []matchResult
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	}
	return w.Code, results
}

func TestMatchEndToEnd(t *testing.T) {
	db := setupTestDB(t)
	seedRecipes(t, db,
		model.Recipe{Name: "A", Ingredients: model.JSONBStringArray{"Tomato", "Onion", "Garlic"}, Dietary: "vegetarian", Difficulty: "easy", CookingTime: 20},
		model.Recipe{Name: "B", Ingredients: model.JSONBStringArray{"Chicken", "Onion"}, Dietary: "non-vegetarian", Difficulty: "medium", CookingTime: 40},
	)
	router := setupRouter(t, db)

	t.Run("no filter", func(t *testing.T) {
		code, results := postMatch(t, router, `{"ingredients":["Onion","Garlic"],"dietary":"None"}`)
		require.Equal(t, http.StatusOK, code)
		require.Len(t, results, 2)
		assert.Equal(t, matchResult{Name: "A", Dietary: "vegetarian", MatchCount: 2, MissingCount: 1, Diff: -1}, results[0])
		assert.Equal(t, matchResult{Name: "B", Dietary: "non-vegetarian", MatchCount: 1, MissingCount: 1, Diff: 0}, results[1])
	})

	t.Run("vegetarian filter drops chicken recipe", func(t *testing.T) {
		code, results := postMatch(t, router, `{"ingredients":["Chicken"],"dietary":"Vegetarian"}`)
		require.Equal(t, http.StatusOK, code)
		assert.Empty(t, results)
	})

	t.Run("non-vegetarian filter", func(t *testing.T) {
		code, results := postMatch(t, router, `{"ingredients":["Onion"],"dietary":"Non-Vegetarian"}`)
		require.Equal(t, http.StatusOK, code)
		require.Len(t, results, 1)
		assert.Equal(t, "B", results[0].Name)
	})

	t.Run("unknown ingredient", func(t *testing.T) {
		code, results := postMatch(t, router, `{"ingredients":["Saffron"]}`)
		require.Equal(t, http.StatusOK, code)
		assert.Empty(t, results)
	})

	t.Run("empty request", func(t *testing.T) {
		code, _ := postMatch(t, router, `{"ingredients":[],"dietary":"None"}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("identical requests give identical results", func(t *testing.T) {
		_, first := postMatch(t, router, `{"ingredients":["Onion","Tomato","Chicken"]}`)
		_, second := postMatch(t, router, `{"ingredients":["Chicken","Tomato","Onion","Onion"]}`)
		assert.Equal(t, first, second)
	})

	t.Run("metrics exposed", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `recipe_match_requests_total{outcome="matched"}`)
	})
}

func TestMatchStoreUnavailable(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(t, db)
	require.NoError(t, database.Close(db))

	code, results := postMatch(t, router, `{"ingredients":["Onion"]}`)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Nil(t, results)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPanicsAreRecordedAndRecovered(t *testing.T) {
	router := setupRouter(t, setupTestDB(t))
	router.GET("/boom", func(c *gin.Context) {
		panic("something broke")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",path="/boom",status_code="500"} 1`)
}

func TestRecipeRoutes(t *testing.T) {
	db := setupTestDB(t)
	seedRecipes(t, db,
		model.Recipe{Name: "Aloo Paratha", Ingredients: model.JSONBStringArray{"Potato", "Butter"}, Dietary: "Vegetarian"},
		model.Recipe{Name: "Egg Bhurji", Ingredients: model.JSONBStringArray{"Egg", "Onion"}, Dietary: "Non-Vegetarian"},
	)
	router := setupRouter(t, db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recipes?dietary=vegetarian", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Recipes []model.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Recipes, 1)
	assert.Equal(t, "Aloo Paratha", response.Recipes[0].Name)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recipes/"+response.Recipes[0].ID.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/match", bytes.NewBufferString(`{"ingredients":["Egg"]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Egg Bhurji")
}
