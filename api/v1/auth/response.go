package auth

import (
	"errors"
	"strings"

	"quillpost-api/internal/jwt"
	"quillpost-api/internal/models"

	"github.com/go-playground/validator/v10"
)

// BaseResponse contains fields common to all responses
type BaseResponse struct {
	Success bool  `json:"success"`
	Code    int16 `json:"code"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	BaseResponse
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// MessageResponse represents a success response carrying only a message
type MessageResponse struct {
	BaseResponse
	Message string `json:"message"`
}

// LoginResponse represents the response from a successful login
type LoginResponse struct {
	BaseResponse
	User    models.User `json:"user"`
	Message string      `json:"message"`
}

// SessionUser is the identity carried by the current session token
type SessionUser struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role"`
}

// MeResponse represents the current session
type MeResponse struct {
	BaseResponse
	User SessionUser `json:"user"`
}

// NewValidationError creates a new validation error response
func NewValidationError(err error, httpStatus int, code int16) ErrorResponse {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		full := errs[0].Error()
		parts := strings.SplitN(full, "Error:", 2)
		if len(parts) == 2 {
			return NewErrorResponse(strings.TrimSpace(parts[1]), httpStatus, code)
		}
		return NewErrorResponse(full, httpStatus, code)
	}
	return NewErrorResponse("Invalid request format", httpStatus, code)
}

// NewErrorResponse creates a new error response
func NewErrorResponse(message string, httpStatus int, code int16) ErrorResponse {
	return ErrorResponse{
		BaseResponse: BaseResponse{Success: false, Code: code},
		StatusCode:   httpStatus,
		Message:      message,
	}
}

// NewMessageResponse creates a new success response
func NewMessageResponse(message string, code int16) MessageResponse {
	return MessageResponse{
		BaseResponse: BaseResponse{Success: true, Code: code},
		Message:      message,
	}
}

// NewLoginResponse creates a new login response
func NewLoginResponse(user models.User, message string, code int16) LoginResponse {
	return LoginResponse{
		BaseResponse: BaseResponse{Success: true, Code: code},
		User:         user,
		Message:      message,
	}
}

// NewMeResponse creates a response describing the session claims
func NewMeResponse(claims *jwt.Claims, code int16) MeResponse {
	return MeResponse{
		BaseResponse: BaseResponse{Success: true, Code: code},
		User: SessionUser{
			ID:     claims.UserID,
			Name:   claims.Name,
			Email:  claims.Email,
			Avatar: claims.Avatar,
			Role:   claims.Role,
		},
	}
}
