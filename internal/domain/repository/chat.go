package repository

import (
	"context"

	"lakenine-studio/internal/domain/entity"
)

type ChatRepository interface {
	Save(ctx context.Context, chat *entity.Chat) error
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Chat, error)
	SoftDelete(ctx context.Context, id string) error
}
