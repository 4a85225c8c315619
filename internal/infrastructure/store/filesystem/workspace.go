// Package filesystem persists generated projects as real directory
// trees so preview tooling can run them directly.
package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/infrastructure/metrics"
)

const metadataFile = "metadata.json"

type projectMetadata struct {
	ProjectID string    `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	FileCount int       `json:"file_count"`
	Paths     []string  `json:"paths"`
}

type Workspace struct {
	basePath string
	logger   *slog.Logger
}

// NewWorkspace verifies the base directory up front so write failures
// surface at startup instead of mid-request.
func NewWorkspace(basePath string, logger *slog.Logger) (*Workspace, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace dir %s: %w", basePath, err)
	}
	probe := filepath.Join(basePath, ".probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return nil, fmt.Errorf("workspace dir %s not writable: %w", basePath, err)
	}
	_ = os.Remove(probe)
	return &Workspace{basePath: basePath, logger: logger}, nil
}

func (w *Workspace) SaveProject(ctx context.Context, projectID string, files entity.FileSet) (string, error) {
	dir, err := w.projectDir(projectID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		metrics.IncError("filesystem", "mkdir")
		return "", fmt.Errorf("create project dir: %w", err)
	}

	paths := make([]string, 0, len(files))
	for p, content := range files {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		target, err := securePath(dir, p)
		if err != nil {
			w.logger.Warn("skipping unsafe project path", "project", projectID, "path", p)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			metrics.IncError("filesystem", "mkdir")
			return "", fmt.Errorf("create dir for %s: %w", p, err)
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			metrics.IncError("filesystem", "write")
			return "", fmt.Errorf("write %s: %w", p, err)
		}
		paths = append(paths, p)
	}
	sort.Strings(paths)

	meta := projectMetadata{
		ProjectID: projectID,
		CreatedAt: time.Now().UTC(),
		FileCount: len(paths),
		Paths:     paths,
	}
	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, metadataFile), metaBytes, 0o644); err != nil {
		metrics.IncError("filesystem", "write")
		return "", fmt.Errorf("write metadata: %w", err)
	}

	metrics.IncDBOp("workspace", "save")
	w.logger.Info("project saved", "project", projectID, "files", len(paths), "dir", dir)
	return dir, nil
}

func (w *Workspace) GetProject(ctx context.Context, projectID string) (entity.FileSet, error) {
	dir, err := w.projectDir(projectID)
	if err != nil {
		return nil, err
	}
	metaBytes, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		return nil, fmt.Errorf("read metadata for %s: %w", projectID, err)
	}
	var meta projectMetadata
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, fmt.Errorf("decode metadata for %s: %w", projectID, err)
	}

	files := entity.FileSet{}
	for _, p := range meta.Paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		target, err := securePath(dir, p)
		if err != nil {
			continue
		}
		content, err := os.ReadFile(target)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		files.Set(p, string(content))
	}
	metrics.IncDBOp("workspace", "get")
	return files, nil
}

func (w *Workspace) ListProjects(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(w.basePath)
	if err != nil {
		return nil, fmt.Errorf("read workspace dir: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	metrics.IncDBOp("workspace", "list")
	return ids, nil
}

func (w *Workspace) DeleteProject(_ context.Context, projectID string) error {
	dir, err := w.projectDir(projectID)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		metrics.IncError("filesystem", "delete")
		return fmt.Errorf("delete project %s: %w", projectID, err)
	}
	metrics.IncDBOp("workspace", "delete")
	return nil
}

func (w *Workspace) projectDir(projectID string) (string, error) {
	if projectID == "" || strings.ContainsAny(projectID, "/\\") || strings.Contains(projectID, "..") {
		return "", fmt.Errorf("invalid project id %q", projectID)
	}
	return filepath.Join(w.basePath, projectID), nil
}

// securePath joins rel under dir and rejects traversal escapes.
func securePath(dir, rel string) (string, error) {
	target := filepath.Join(dir, filepath.FromSlash(rel))
	if !strings.HasPrefix(target, filepath.Clean(dir)+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes project dir", rel)
	}
	return target, nil
}
