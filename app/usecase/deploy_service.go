package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/domain/repository"
)

type DeployUsecase interface {
	DeployProject(ctx context.Context, req entity.DeployRequest) (*entity.Deployment, error)
}

type DeployService struct {
	deployer repository.Deployer
	logger   *slog.Logger
}

func NewDeployService(deployer repository.Deployer, logger *slog.Logger) *DeployService {
	return &DeployService{deployer: deployer, logger: logger}
}

func (s *DeployService) DeployProject(ctx context.Context, req entity.DeployRequest) (*entity.Deployment, error) {
	if len(req.Files) == 0 {
		return nil, fmt.Errorf("deployment requires at least one file")
	}
	if !req.Files.HasSuffix("package.json") {
		return nil, fmt.Errorf("deployment requires a package.json")
	}
	dep, err := s.deployer.Deploy(ctx, req.ProjectName, req.Files)
	if err != nil {
		return nil, fmt.Errorf("deploy %s: %w", req.ProjectName, err)
	}
	s.logger.Info("project deployed", "project", dep.ProjectName, "url", dep.URL, "status", dep.Status)
	return dep, nil
}
