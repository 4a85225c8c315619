package repository

import (
	"context"

	"lakenine-studio/internal/domain/entity"
)

// WorkspaceRepository persists generated projects as real directory
// trees so a preview sandbox or local tooling can run them.
type WorkspaceRepository interface {
	SaveProject(ctx context.Context, projectID string, files entity.FileSet) (string, error)
	GetProject(ctx context.Context, projectID string) (entity.FileSet, error)
	ListProjects(ctx context.Context) ([]string, error)
	DeleteProject(ctx context.Context, projectID string) error
}
