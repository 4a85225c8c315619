package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

type ChatMessage struct {
	Role      MessageRole `json:"role" bson:"role" validate:"required,oneof=user assistant"`
	Content   string      `json:"content" bson:"content" validate:"required"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
}

// Chat is one studio conversation together with the project files it
// last produced. Deletion is soft: IsActive flips to false.
type Chat struct {
	ID           string        `json:"id" bson:"_id"`
	UserID       string        `json:"userId" bson:"user_id"`
	UserEmail    string        `json:"userEmail,omitempty" bson:"user_email,omitempty"`
	UserName     string        `json:"userName,omitempty" bson:"user_name,omitempty"`
	Title        string        `json:"title" bson:"title"`
	Messages     []ChatMessage `json:"messages" bson:"messages"`
	ProjectFiles FileSet       `json:"projectFiles,omitempty" bson:"project_files,omitempty"`
	IsActive     bool          `json:"isActive" bson:"is_active"`
	CreatedAt    time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" bson:"updated_at"`
}

func NewChat(userID, title string) *Chat {
	now := time.Now().UTC()
	return &Chat{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
