package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/domain/repository"
)

type ChatUsecase interface {
	SaveChat(ctx context.Context, chat *entity.Chat) (*entity.Chat, error)
	GetChat(ctx context.Context, id string) (*entity.Chat, error)
	ListChats(ctx context.Context, userID string, limit int) ([]*entity.Chat, error)
	DeleteChat(ctx context.Context, id string) error
}

type ChatService struct {
	repo   repository.ChatRepository
	logger *slog.Logger
}

func NewChatService(repo repository.ChatRepository, logger *slog.Logger) *ChatService {
	return &ChatService{repo: repo, logger: logger}
}

// SaveChat fills in identity and title for new chats before persisting.
func (s *ChatService) SaveChat(ctx context.Context, chat *entity.Chat) (*entity.Chat, error) {
	if chat.UserID == "" {
		return nil, fmt.Errorf("chat requires a user id")
	}
	if len(chat.Messages) == 0 {
		return nil, fmt.Errorf("chat requires at least one message")
	}
	if chat.ID == "" {
		fresh := entity.NewChat(chat.UserID, chat.Title)
		fresh.UserEmail = chat.UserEmail
		fresh.UserName = chat.UserName
		fresh.Messages = chat.Messages
		fresh.ProjectFiles = chat.ProjectFiles
		chat = fresh
	}
	if chat.Title == "" {
		chat.Title = deriveTitle(chat.Messages)
	}
	if err := s.repo.Save(ctx, chat); err != nil {
		return nil, fmt.Errorf("save chat: %w", err)
	}
	s.logger.Info("chat saved", "chat_id", chat.ID, "user_id", chat.UserID, "messages", len(chat.Messages))
	return chat, nil
}

func (s *ChatService) GetChat(ctx context.Context, id string) (*entity.Chat, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ChatService) ListChats(ctx context.Context, userID string, limit int) ([]*entity.Chat, error) {
	if userID == "" {
		return nil, fmt.Errorf("listing chats requires a user id")
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *ChatService) DeleteChat(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

// deriveTitle takes the first user message, trimmed to a label.
func deriveTitle(messages []entity.ChatMessage) string {
	for _, m := range messages {
		if m.Role != entity.RoleUser {
			continue
		}
		title := strings.TrimSpace(m.Content)
		if len(title) > 60 {
			title = title[:60] + "..."
		}
		if title != "" {
			return title
		}
	}
	return "New chat"
}
