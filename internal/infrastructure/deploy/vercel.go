package deploy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/infrastructure/metrics"
)

const defaultVercelURL = "https://api.vercel.com"

// VercelClient publishes a generated FileSet as a static-build Vercel
// deployment.
type VercelClient struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewVercelClient(token, baseURL string, timeout time.Duration, logger *slog.Logger) *VercelClient {
	if baseURL == "" {
		baseURL = defaultVercelURL
	}
	return &VercelClient{
		token:      token,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type inlinedFile struct {
	File string `json:"file"`
	Data string `json:"data"`
}

type deploymentRequest struct {
	Name            string          `json:"name"`
	Files           []inlinedFile   `json:"files"`
	Target          string          `json:"target"`
	ProjectSettings json.RawMessage `json:"projectSettings,omitempty"`
}

type deploymentResponse struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	ReadyState string `json:"readyState"`
	Error      *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const vercelJSON = `{
  "version": 2,
  "builds": [{ "src": "package.json", "use": "@vercel/static-build", "config": { "distDir": "dist" } }],
  "routes": [{ "handle": "filesystem" }, { "src": "/(.*)", "dest": "/index.html" }]
}`

// Deploy uploads the project inline and returns the resulting
// deployment. The file set is augmented with a vercel.json and a
// static-build script before upload.
func (c *VercelClient) Deploy(ctx context.Context, projectName string, files entity.FileSet) (*entity.Deployment, error) {
	name := SlugifyName(projectName)
	prepared := prepareFiles(files)

	payload, err := json.Marshal(deploymentRequest{
		Name:   name,
		Files:  prepared,
		Target: "production",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal deployment: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v13/deployments", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build deployment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.IncDeployment("transport_error")
		return nil, fmt.Errorf("deployment request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	var parsed deploymentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		metrics.IncDeployment("decode_error")
		return nil, fmt.Errorf("decode deployment response (%d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= 300 || parsed.Error != nil {
		metrics.IncDeployment("upstream_error")
		msg := strconv.Itoa(resp.StatusCode)
		if parsed.Error != nil {
			msg = parsed.Error.Code + ": " + parsed.Error.Message
		}
		c.logger.Error("deployment rejected", "project", name, "error", msg)
		return nil, fmt.Errorf("deployment rejected: %s", msg)
	}

	metrics.IncDeployment("ok")
	c.logger.Info("deployment created", "project", name, "url", parsed.URL)
	return &entity.Deployment{
		DeploymentID: parsed.ID,
		URL:          "https://" + parsed.URL,
		Status:       parsed.ReadyState,
		ProjectName:  name,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

var slugInvalidRe = regexp.MustCompile(`[^a-z0-9-]+`)

// SlugifyName lowercases the project name, strips invalid characters,
// bounds it to 50 characters and appends a time-based suffix so
// repeated deploys never collide.
func SlugifyName(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugInvalidRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "lakenine-site"
	}
	if len(slug) > 50 {
		slug = slug[:50]
		slug = strings.Trim(slug, "-")
	}
	return slug + "-" + strconv.FormatInt(time.Now().Unix(), 36)
}

// prepareFiles converts the set to the inline upload shape, adding the
// static-build config and build script the hosting side expects.
func prepareFiles(files entity.FileSet) []inlinedFile {
	prepared := files.Clone()
	if _, ok := prepared["vercel.json"]; !ok {
		prepared["vercel.json"] = vercelJSON
	}
	if pkgPath, ok := prepared.FindBySuffix("package.json"); ok {
		var pkg map[string]any
		if err := json.Unmarshal([]byte(prepared[pkgPath]), &pkg); err == nil {
			scripts, _ := pkg["scripts"].(map[string]any)
			if scripts == nil {
				scripts = map[string]any{}
			}
			if _, ok := scripts["build"]; !ok {
				scripts["build"] = "vite build"
			}
			if _, ok := scripts["vercel-build"]; !ok {
				scripts["vercel-build"] = "vite build"
			}
			pkg["scripts"] = scripts
			if b, err := json.MarshalIndent(pkg, "", "  "); err == nil {
				prepared[pkgPath] = string(b)
			}
		}
	}

	out := make([]inlinedFile, 0, len(prepared))
	for path, content := range prepared {
		out = append(out, inlinedFile{File: path, Data: content})
	}
	return out
}
