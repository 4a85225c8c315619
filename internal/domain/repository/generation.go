package repository

import (
	"context"

	"lakenine-studio/internal/domain/entity"
)

type GenerationRepository interface {
	Create(ctx context.Context, gen *entity.Generation) error
	Update(ctx context.Context, gen *entity.Generation) error
	GetByID(ctx context.Context, id string) (*entity.Generation, error)
	List(ctx context.Context, limit int) ([]*entity.Generation, error)
}
