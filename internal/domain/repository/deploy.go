package repository

import (
	"context"

	"lakenine-studio/internal/domain/entity"
)

// Deployer publishes a generated project to a hosting provider.
type Deployer interface {
	Deploy(ctx context.Context, projectName string, files entity.FileSet) (*entity.Deployment, error)
}
