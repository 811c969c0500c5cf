package blog

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Code       int16  `json:"code"`
	Message    string `json:"message"`
}

// GenerateResponse carries the generated draft
type GenerateResponse struct {
	Success bool   `json:"success"`
	Code    int16  `json:"code"`
	Content string `json:"content"`
	HTML    string `json:"html"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(message string, httpStatus int, code int16) ErrorResponse {
	return ErrorResponse{
		Success:    false,
		StatusCode: httpStatus,
		Code:       code,
		Message:    message,
	}
}
