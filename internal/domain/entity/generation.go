package entity

import (
	"time"

	"github.com/google/uuid"
)

type GenerationStatus string

const (
	GenerationStatusSucceeded GenerationStatus = "succeeded"
	GenerationStatusFallback  GenerationStatus = "fallback"
	GenerationStatusFailed    GenerationStatus = "failed"
)

// GenerateRequest is the inbound contract of the generation endpoint.
type GenerateRequest struct {
	Prompt        string `json:"prompt" validate:"required,min=3"`
	UserID        string `json:"userId,omitempty"`
	UseBoltPrompt bool   `json:"useBoltPrompt"`
}

// GenerateResponse carries the finished project back to the studio UI.
type GenerateResponse struct {
	GenerationID string         `json:"generationId"`
	Plan         string         `json:"plan"`
	Files        FileSet        `json:"files"`
	Domain       BusinessDomain `json:"domain"`
	Strategy     string         `json:"strategy"`
	Fallback     bool           `json:"fallback"`
	Valid        bool           `json:"valid"`
	Issues       []Issue        `json:"issues,omitempty"`
}

// Generation is the persisted record of one pipeline run.
type Generation struct {
	ID         string           `json:"id" bson:"_id"`
	UserID     string           `json:"userId,omitempty" bson:"user_id,omitempty"`
	Prompt     string           `json:"prompt" bson:"prompt"`
	Domain     BusinessDomain   `json:"domain" bson:"domain"`
	Plan       string           `json:"plan" bson:"plan"`
	Status     GenerationStatus `json:"status" bson:"status"`
	Strategy   string           `json:"strategy" bson:"strategy"`
	FileCount  int              `json:"fileCount" bson:"file_count"`
	Valid      bool             `json:"valid" bson:"valid"`
	IssueCodes []string         `json:"issueCodes,omitempty" bson:"issue_codes,omitempty"`
	Error      string           `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt  time.Time        `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time        `json:"updatedAt" bson:"updated_at"`
}

func NewGeneration(prompt string, userID string, domain BusinessDomain) *Generation {
	now := time.Now().UTC()
	return &Generation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Prompt:    prompt,
		Domain:    domain,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
