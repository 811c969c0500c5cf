package generate

import "errors"

var (
	// ErrEmptyPrompt indicates no blog title was supplied
	ErrEmptyPrompt = errors.New("Please enter a blog title first")

	// ErrPromptTooLong indicates the title exceeds the configured limit
	ErrPromptTooLong = errors.New("Blog title is too long")

	// ErrUpstream indicates the completion provider failed
	ErrUpstream = errors.New("Failed to generate content")

	// ErrNoContent indicates the provider answered without any text
	ErrNoContent = errors.New("No content generated")

	// ErrDisabled indicates no provider is configured
	ErrDisabled = errors.New("AI generation is not configured")
)
