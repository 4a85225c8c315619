package images

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakenine-studio/internal/domain/entity"
)

type fakeSearcher struct {
	queries []string
	answer  func(query string) ([]entity.ImageHit, error)
}

func (f *fakeSearcher) SearchImages(_ context.Context, query string, _ entity.ImageSearchOptions) ([]entity.ImageHit, error) {
	f.queries = append(f.queries, query)
	return f.answer(query)
}

func newTestResolver(searcher *fakeSearcher) *Resolver {
	return NewResolver(searcher, time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestResolveReturnsFirstHit(t *testing.T) {
	searcher := &fakeSearcher{answer: func(string) ([]entity.ImageHit, error) {
		return []entity.ImageHit{{WebformatURL: "https://cdn.test/hero-web.jpg", LargeImageURL: "https://cdn.test/hero-big.jpg"}}, nil
	}}

	url := newTestResolver(searcher).Resolve(context.Background(), "hero", entity.DomainGym)

	assert.Equal(t, "https://cdn.test/hero-web.jpg", url)
	require.Len(t, searcher.queries, 1)
	assert.Equal(t, "fitness workout business background", searcher.queries[0])
}

func TestResolveFallbackLadder(t *testing.T) {
	// Seasoned query misses, bare category hits.
	searcher := &fakeSearcher{answer: func(query string) ([]entity.ImageHit, error) {
		if query == "hero" {
			return []entity.ImageHit{{LargeImageURL: "https://cdn.test/plain-hero.jpg"}}, nil
		}
		return nil, nil
	}}

	url := newTestResolver(searcher).Resolve(context.Background(), "hero", entity.DomainCafe)

	assert.Equal(t, "https://cdn.test/plain-hero.jpg", url)
	assert.Equal(t, []string{"coffee cafe business background", "hero"}, searcher.queries)
}

func TestResolveStaticFallbackWhenProviderDown(t *testing.T) {
	searcher := &fakeSearcher{answer: func(string) ([]entity.ImageHit, error) {
		return nil, errors.New("provider down")
	}}
	resolver := newTestResolver(searcher)

	url := resolver.Resolve(context.Background(), "hero", entity.DomainGym)
	assert.Equal(t, fallbackURLs["hero"], url)

	url = resolver.Resolve(context.Background(), "somethingodd", entity.DomainGym)
	assert.Equal(t, defaultFallbackURL, url, "unknown categories get the default fallback")
}

func TestResolveNeverReturnsMarkerOrEmpty(t *testing.T) {
	searcher := &fakeSearcher{answer: func(string) ([]entity.ImageHit, error) {
		return nil, errors.New("boom")
	}}
	resolver := newTestResolver(searcher)

	for _, category := range []string{"logo", "hero", "team", "unheard-of"} {
		url := resolver.Resolve(context.Background(), category, entity.DomainBusiness)
		assert.NotEmpty(t, url)
		assert.NotContains(t, url, "IMAGE:")
	}
}

func TestBuildQueryStaysCompact(t *testing.T) {
	for category := range categoryQueries {
		for domain := range entity.DomainKeywords {
			q := BuildQuery(category, domain)
			assert.NotEmpty(t, q)
			assert.LessOrEqual(t, len(q), maxQueryLen, "category %s domain %s", category, domain)
		}
	}
}

func TestBuildQueryUnknownCategory(t *testing.T) {
	q := BuildQuery("mystery", entity.DomainFinance)
	assert.Contains(t, q, "finance")
	assert.Contains(t, q, "business professional")
}

func TestSearchOptionsPerCategory(t *testing.T) {
	logo := searchOptions("logo")
	assert.Equal(t, "vector", logo.ImageType)
	assert.GreaterOrEqual(t, logo.MinWidth, 200)

	hero := searchOptions("hero")
	assert.Equal(t, "horizontal", hero.Orientation)

	other := searchOptions("team")
	assert.Equal(t, "photo", other.ImageType)
}
