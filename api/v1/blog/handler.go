package blog

import (
	"errors"
	"net/http"

	"quillpost-api/internal/generate"
	"quillpost-api/internal/logger"
	"quillpost-api/pkg/status"

	"github.com/gin-gonic/gin"
)

// NewHandler creates a new blog handler
func NewHandler(generator Generator, log *logger.Logger) *Handler {
	return &Handler{
		generator: generator,
		logger:    log,
	}
}

// HandleGenerate writes a Markdown draft for the given title
func (h *Handler) HandleGenerate(c *gin.Context) {
	if !h.generator.Enabled() {
		c.JSON(http.StatusServiceUnavailable, NewErrorResponse(generate.ErrDisabled.Error(), http.StatusServiceUnavailable, status.StatusServiceUnavailable))
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.SecureLog(err, "Invalid request format", "generate")
		c.JSON(http.StatusBadRequest, NewErrorResponse("Invalid request format", http.StatusBadRequest, status.StatusBadRequest))
		return
	}

	draft, err := h.generator.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		statusCode := http.StatusInternalServerError
		apiStatusCode := status.StatusInternalServerError
		message := err.Error()

		switch {
		case errors.Is(err, generate.ErrEmptyPrompt):
			statusCode = http.StatusBadRequest
			apiStatusCode = status.StatusEmptyPrompt
		case errors.Is(err, generate.ErrPromptTooLong):
			statusCode = http.StatusBadRequest
			apiStatusCode = status.StatusPromptTooLong
		case errors.Is(err, generate.ErrNoContent):
			statusCode = http.StatusBadGateway
			apiStatusCode = status.StatusExternalServiceError
		case errors.Is(err, generate.ErrUpstream):
			statusCode = http.StatusBadGateway
			apiStatusCode = status.StatusExternalServiceError
			// Provider errors can echo request details
			message = generate.ErrUpstream.Error()
		case errors.Is(err, generate.ErrDisabled):
			statusCode = http.StatusServiceUnavailable
			apiStatusCode = status.StatusServiceUnavailable
		}

		h.logger.SecureLog(err, "Content generation failed", "generate")
		c.JSON(statusCode, NewErrorResponse(message, statusCode, apiStatusCode))
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Success: true,
		Code:    status.StatusContentGenerate,
		Content: draft.Markdown,
		HTML:    draft.HTML,
	})
}
