package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/infrastructure/metrics"
)

const defaultPixabayURL = "https://pixabay.com/api/"

// PixabayClient implements repository.ImageSearcher over the Pixabay
// REST API.
type PixabayClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewPixabayClient(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) *PixabayClient {
	if baseURL == "" {
		baseURL = defaultPixabayURL
	}
	return &PixabayClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type pixabayResponse struct {
	Total     int               `json:"total"`
	TotalHits int               `json:"totalHits"`
	Hits      []entity.ImageHit `json:"hits"`
}

func (c *PixabayClient) SearchImages(ctx context.Context, query string, opts entity.ImageSearchOptions) ([]entity.ImageHit, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("safesearch", "true")
	params.Set("order", "popular")
	if opts.ImageType != "" {
		params.Set("image_type", opts.ImageType)
	}
	if opts.Orientation != "" {
		params.Set("orientation", opts.Orientation)
	}
	if opts.MinWidth > 0 {
		params.Set("min_width", strconv.Itoa(opts.MinWidth))
	}
	if opts.MinHeight > 0 {
		params.Set("min_height", strconv.Itoa(opts.MinHeight))
	}
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	params.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build image search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.IncError("images", "transport")
		return nil, fmt.Errorf("image search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		metrics.IncError("images", "status")
		return nil, fmt.Errorf("image search returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed pixabayResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		metrics.IncError("images", "decode")
		return nil, fmt.Errorf("decode image search response: %w", err)
	}
	c.logger.Debug("image search done", "query", query, "hits", parsed.TotalHits)
	return parsed.Hits, nil
}
