package blog

// GenerateRequest carries the title to write about
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}
