package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/ingrecipe/backend/config"
	"github.com/pageza/ingrecipe/backend/internal/database"
	"github.com/pageza/ingrecipe/backend/internal/logger"
	"github.com/pageza/ingrecipe/backend/internal/model"
)

//go:embed sample_recipes.json
var sampleRecipes []byte

func main() {
	file := flag.String("file", "", "JSON file with recipes to seed (defaults to the bundled sample set)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.FromConfig(cfg))
	defer log.Sync()

	recipes, err := loadRecipes(*file)
	if err != nil {
		log.Fatal("failed to load recipes", zap.String("file", *file), zap.Error(err))
	}

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	inserted, err := database.NewRecipeStore(db).CreateMissing(ctx, recipes)
	if err != nil {
		log.Fatal("failed to seed recipes", zap.Error(err))
	}

	log.Info("seeded recipes",
		zap.Int("inserted", inserted),
		zap.Int("skipped", len(recipes)-inserted),
	)
}

// loadRecipes reads recipes from path, or from the bundled sample set when
// path is empty. Recipes without a name or ingredients are rejected.
func loadRecipes(path string) ([]model.Recipe, error) {
	data := sampleRecipes
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}

	var recipes []model.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse recipes: %w", err)
	}

	for i, r := range recipes {
		if r.Name == "" {
			return nil, fmt.Errorf("recipe %d has no name", i)
		}
		if len(r.Ingredients) == 0 {
			return nil, fmt.Errorf("recipe %q has no ingredients", r.Name)
		}
	}
	return recipes, nil
}
