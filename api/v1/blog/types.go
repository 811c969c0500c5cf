package blog

import (
	"context"

	"quillpost-api/internal/generate"
	"quillpost-api/internal/logger"
)

// Generator produces a draft from a blog title
type Generator interface {
	Enabled() bool
	Generate(ctx context.Context, prompt string) (*generate.Draft, error)
}

// Handler manages blog authoring requests
type Handler struct {
	generator Generator
	logger    *logger.Logger
}
