package generate

import "context"

// Completer sends a system and user message to a chat model and returns its reply
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Draft is a generated blog post in both source and rendered form
type Draft struct {
	Markdown string
	HTML     string
}
