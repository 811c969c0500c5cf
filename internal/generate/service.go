package generate

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"quillpost-api/internal/logger"

	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const systemPrompt = "You are a helpful writing assistant for a blogging platform. " +
	"Write a complete, well structured blog post in Markdown about the title the user gives you. " +
	"Start with a level one heading, use subheadings and short paragraphs, and end with a brief conclusion. " +
	"Return only the Markdown without code fences."

// Service turns a blog title into a Markdown draft and its HTML rendering
type Service struct {
	completer     Completer
	markdown      goldmark.Markdown
	maxPromptSize int
	logger        *logger.Logger
}

// NewService creates a new generation service. A nil completer disables generation.
func NewService(completer Completer, maxPromptSize int, logger *logger.Logger) *Service {
	return &Service{
		completer:     completer,
		markdown:      goldmark.New(goldmark.WithExtensions(extension.GFM)),
		maxPromptSize: maxPromptSize,
		logger:        logger,
	}
}

// Enabled reports whether a completion provider is configured
func (s *Service) Enabled() bool {
	return s.completer != nil
}

// Generate asks the model for a post about prompt
func (s *Service) Generate(ctx context.Context, prompt string) (*Draft, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if s.maxPromptSize > 0 && utf8.RuneCountInString(prompt) > s.maxPromptSize {
		return nil, ErrPromptTooLong
	}

	content, err := s.completer.Complete(ctx, systemPrompt, "Title: "+prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	content = stripFences(strings.TrimSpace(content))
	if content == "" {
		return nil, ErrNoContent
	}

	html, err := s.Render(content)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"prompt_length":  len(prompt),
		"content_length": len(content),
	}).Info("Draft generated")

	return &Draft{Markdown: content, HTML: html}, nil
}

// Render converts GitHub flavoured Markdown to HTML. Raw HTML in the source is dropped.
func (s *Service) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

// stripFences unwraps a reply the model wrapped in a single ``` block
func stripFences(content string) string {
	if !strings.HasPrefix(content, "```") || !strings.HasSuffix(content, "```") || len(content) < 6 {
		return content
	}
	inner := strings.TrimSuffix(content, "```")
	if nl := strings.IndexByte(inner, '\n'); nl >= 0 {
		inner = inner[nl+1:]
	} else {
		return content
	}
	return strings.TrimSpace(inner)
}
