package api

import (
	"context"

	"github.com/pageza/ingrecipe/backend/internal/model"
)

// ImageResolver rewrites stored image references into loadable URLs
type ImageResolver interface {
	ResolveImageURL(ctx context.Context, ref string) string
}

func resolveImage(ctx context.Context, images ImageResolver, recipe *model.Recipe) {
	if images == nil {
		return
	}
	recipe.ImageURL = images.ResolveImageURL(ctx, recipe.ImageURL)
}
