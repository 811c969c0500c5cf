package csrf

import "quillpost-api/pkg/status"

// TokenResponse carries a masked token; ExpiresAt is a unix timestamp
type TokenResponse struct {
	Success   bool   `json:"success"`
	Code      int16  `json:"code"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// ErrorResponse matches the error envelope used by the rest of the API
type ErrorResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Code       int16  `json:"code"`
	Message    string `json:"message"`
}

func NewResponse(token string, expiresAt int64) *TokenResponse {
	return &TokenResponse{
		Success:   true,
		Code:      status.StatusOK,
		Token:     token,
		ExpiresAt: expiresAt,
	}
}

func NewErrorResponse(httpStatus int, code int16, message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: httpStatus,
		Code:       code,
		Message:    message,
	}
}
