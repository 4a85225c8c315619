package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakenine-studio/internal/domain/entity"
)

type memoryChatRepo struct {
	chats map[string]*entity.Chat
}

func newMemoryChatRepo() *memoryChatRepo {
	return &memoryChatRepo{chats: map[string]*entity.Chat{}}
}

func (m *memoryChatRepo) Save(_ context.Context, chat *entity.Chat) error {
	m.chats[chat.ID] = chat
	return nil
}

func (m *memoryChatRepo) GetByID(_ context.Context, id string) (*entity.Chat, error) {
	chat, ok := m.chats[id]
	if !ok || !chat.IsActive {
		return nil, assert.AnError
	}
	return chat, nil
}

func (m *memoryChatRepo) ListByUser(_ context.Context, userID string, _ int) ([]*entity.Chat, error) {
	var out []*entity.Chat
	for _, c := range m.chats {
		if c.UserID == userID && c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryChatRepo) SoftDelete(_ context.Context, id string) error {
	if chat, ok := m.chats[id]; ok {
		chat.IsActive = false
	}
	return nil
}

func newTestChatService(repo *memoryChatRepo) *ChatService {
	return NewChatService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSaveChatAssignsIdentityAndTitle(t *testing.T) {
	repo := newMemoryChatRepo()
	svc := newTestChatService(repo)

	saved, err := svc.SaveChat(context.Background(), &entity.Chat{
		UserID: "user-1",
		Messages: []entity.ChatMessage{
			{Role: entity.RoleUser, Content: "Build me a cozy cafe website with a menu section"},
			{Role: entity.RoleAssistant, Content: "Here is your project."},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.True(t, saved.IsActive)
	assert.Equal(t, "Build me a cozy cafe website with a menu section", saved.Title)
	assert.Contains(t, repo.chats, saved.ID)
}

func TestSaveChatTruncatesLongTitle(t *testing.T) {
	svc := newTestChatService(newMemoryChatRepo())

	longPrompt := strings.Repeat("very long prompt ", 20)
	saved, err := svc.SaveChat(context.Background(), &entity.Chat{
		UserID:   "user-1",
		Messages: []entity.ChatMessage{{Role: entity.RoleUser, Content: longPrompt}},
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, len(saved.Title), 63)
	assert.True(t, strings.HasSuffix(saved.Title, "..."))
}

func TestSaveChatRequiresUserAndMessages(t *testing.T) {
	svc := newTestChatService(newMemoryChatRepo())

	_, err := svc.SaveChat(context.Background(), &entity.Chat{
		Messages: []entity.ChatMessage{{Role: entity.RoleUser, Content: "hi"}},
	})
	assert.Error(t, err)

	_, err = svc.SaveChat(context.Background(), &entity.Chat{UserID: "user-1"})
	assert.Error(t, err)
}

func TestListChatsRequiresUser(t *testing.T) {
	svc := newTestChatService(newMemoryChatRepo())
	_, err := svc.ListChats(context.Background(), "", 10)
	assert.Error(t, err)
}

func TestDeleteChatIsSoft(t *testing.T) {
	repo := newMemoryChatRepo()
	svc := newTestChatService(repo)

	saved, err := svc.SaveChat(context.Background(), &entity.Chat{
		UserID:   "user-1",
		Messages: []entity.ChatMessage{{Role: entity.RoleUser, Content: "hello"}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteChat(context.Background(), saved.ID))
	assert.False(t, repo.chats[saved.ID].IsActive, "record kept, flag flipped")
}
