package repository

import (
	"context"

	"lakenine-studio/internal/domain/entity"
)

// ImageSearcher queries a stock image provider.
type ImageSearcher interface {
	SearchImages(ctx context.Context, query string, opts entity.ImageSearchOptions) ([]entity.ImageHit, error)
}

// ImageResolver turns a placeholder category into a usable image URL.
// Implementations never fail: exhausted lookups yield a static fallback.
type ImageResolver interface {
	Resolve(ctx context.Context, category string, domain entity.BusinessDomain) string
}
