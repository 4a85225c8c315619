package images

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/domain/repository"
	"lakenine-studio/internal/infrastructure/metrics"
)

// categoryQueries maps a placeholder category to its base search terms.
var categoryQueries = map[string]string{
	"logo":    "logo business",
	"hero":    "business background",
	"office":  "office professional",
	"about":   "team business",
	"service": "service professional",
	"feature": "technology modern",

	"medical":  "medical healthcare",
	"hospital": "hospital medical",
	"doctor":   "doctor medical",

	"gym":     "gym fitness",
	"fitness": "fitness workout",
	"workout": "workout exercise",

	"restaurant": "restaurant food",
	"food":       "food cuisine",
	"chef":       "chef cooking",
	"cafe":       "cafe coffee",

	"education": "education school",
	"school":    "school classroom",
	"student":   "student learning",

	"technology": "technology digital",
	"computer":   "computer technology",

	"team":        "team professional",
	"testimonial": "person professional",
	"contact":     "office contact",

	"shopping": "shopping retail",
	"product":  "product commerce",
	"store":    "store retail",

	"travel": "travel vacation",
	"hotel":  "hotel accommodation",

	"property": "house property",
	"home":     "home interior",

	"finance": "finance business",
	"banking": "banking finance",
}

const defaultQuery = "business professional"

// fallbackURLs are served when every lookup fails, so resolution is
// total even with the image provider down.
var fallbackURLs = map[string]string{
	"logo":        "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=200&h=200&fit=crop&crop=center",
	"hero":        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=1200&h=600&fit=crop&crop=center",
	"office":      "https://images.unsplash.com/photo-1497366216548-37526070297c?w=800&h=400&fit=crop&crop=center",
	"about":       "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=600&h=400&fit=crop&crop=center",
	"service":     "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=300&h=200&fit=crop&crop=center",
	"feature":     "https://images.unsplash.com/photo-1551434678-e076c223a692?w=300&h=200&fit=crop&crop=center",
	"team":        "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=200&h=200&fit=crop&crop=face",
	"testimonial": "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
	"contact":     "https://images.unsplash.com/photo-1423666639041-f56000c27a9a?w=400&h=300&fit=crop&crop=center",
}

const defaultFallbackURL = "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=400&h=300&fit=crop&crop=center"

// maxQueryLen keeps seasoned queries short for API compatibility.
const maxQueryLen = 50

// Resolver turns placeholder categories into image URLs. Every lookup
// path ends in a usable URL; the provider being unreachable only means
// the static fallback table answers instead.
type Resolver struct {
	searcher repository.ImageSearcher
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// NewResolver paces lookups at one per interval with a small burst.
func NewResolver(searcher repository.ImageSearcher, interval time.Duration, logger *slog.Logger) *Resolver {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Resolver{
		searcher: searcher,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		logger:   logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context, category string, domain entity.BusinessDomain) string {
	opts := searchOptions(category)
	queries := []string{BuildQuery(category, domain)}
	if category == "logo" {
		queries = append(queries, "business logo")
	} else {
		queries = append(queries, category)
	}
	queries = append(queries, string(domain), "professional")

	for _, q := range queries {
		if q == "" {
			continue
		}
		if err := r.limiter.Wait(ctx); err != nil {
			break
		}
		hits, err := r.searcher.SearchImages(ctx, q, opts)
		if err != nil {
			r.logger.Warn("image lookup failed", "category", category, "query", q, "error", err)
			continue
		}
		if url := bestURL(hits); url != "" {
			metrics.IncImageLookup("hit")
			return url
		}
	}

	metrics.IncImageLookup("fallback")
	return FallbackURL(category)
}

// BuildQuery combines the category base terms with the top two domain
// keywords, truncated to keep the query compact.
func BuildQuery(category string, domain entity.BusinessDomain) string {
	base, ok := categoryQueries[category]
	if !ok {
		base = defaultQuery
	}
	if keywords := entity.DomainKeywords[domain]; len(keywords) >= 2 {
		seasoned := keywords[0] + " " + keywords[1] + " " + base
		if len(seasoned) > maxQueryLen {
			seasoned = seasoned[:maxQueryLen]
		}
		return strings.TrimSpace(seasoned)
	}
	return base
}

// FallbackURL is the static answer of last resort for a category.
func FallbackURL(category string) string {
	if url, ok := fallbackURLs[category]; ok {
		return url
	}
	return defaultFallbackURL
}

// searchOptions picks provider options per category: logos want small
// vector-style images, heroes want wide photos.
func searchOptions(category string) entity.ImageSearchOptions {
	switch category {
	case "logo":
		return entity.ImageSearchOptions{ImageType: "vector", MinWidth: 200, MinHeight: 200, PerPage: 10}
	case "hero":
		return entity.ImageSearchOptions{ImageType: "photo", Orientation: "horizontal", MinWidth: 1280, MinHeight: 640, PerPage: 10}
	default:
		return entity.ImageSearchOptions{ImageType: "photo", PerPage: 10}
	}
}

// bestURL prefers the web-format rendition, falling back to the large
// image, from the first usable hit.
func bestURL(hits []entity.ImageHit) string {
	for _, h := range hits {
		if h.WebformatURL != "" {
			return h.WebformatURL
		}
		if h.LargeImageURL != "" {
			return h.LargeImageURL
		}
	}
	return ""
}
