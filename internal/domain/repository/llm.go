package repository

import "context"

// ModelClient is the single seam to the language model provider.
type ModelClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
