// Package status holds the API-level codes carried in the "code" field of
// every response body. Ranges: 1xxx success, 4xxx client errors, 5xxx server errors.
package status

const (
	StatusOK              int16 = 1000
	StatusLoginSuccess    int16 = 1010
	StatusSignupSuccess   int16 = 1011
	StatusLogoutSuccess   int16 = 1013
	StatusSessionActive   int16 = 1014
	StatusContentGenerate int16 = 1020

	StatusBadRequest         int16 = 4000
	StatusUnauthorized       int16 = 4001
	StatusNotFound           int16 = 4003
	StatusTooManyRequests    int16 = 4005
	StatusValidationFailed   int16 = 4010
	StatusInvalidCredentials int16 = 4011
	StatusInvalidToken       int16 = 4012
	StatusEmailAlreadyExists int16 = 4021
	StatusInvalidIdentity    int16 = 4024
	StatusEmptyPrompt        int16 = 4030
	StatusPromptTooLong      int16 = 4031
	StatusCSRFTokenMismatch  int16 = 4040

	StatusInternalServerError  int16 = 5000
	StatusServiceUnavailable   int16 = 5002
	StatusExternalServiceError int16 = 5050
)

var texts = map[int16]string{
	StatusOK:              "OK",
	StatusLoginSuccess:    "Login successful",
	StatusSignupSuccess:   "Registration successful",
	StatusLogoutSuccess:   "Logout successful",
	StatusSessionActive:   "Session active",
	StatusContentGenerate: "Content generated",

	StatusBadRequest:         "Bad request",
	StatusUnauthorized:       "Unauthorized",
	StatusNotFound:           "Resource not found",
	StatusTooManyRequests:    "Too many requests",
	StatusValidationFailed:   "Validation failed",
	StatusInvalidCredentials: "Invalid credentials",
	StatusInvalidToken:       "Invalid token",
	StatusEmailAlreadyExists: "Email already registered",
	StatusInvalidIdentity:    "Identity assertion rejected",
	StatusEmptyPrompt:        "Prompt is empty",
	StatusPromptTooLong:      "Prompt is too long",
	StatusCSRFTokenMismatch:  "CSRF token mismatch",

	StatusInternalServerError:  "Internal server error",
	StatusServiceUnavailable:   "Service unavailable",
	StatusExternalServiceError: "Upstream service error",
}

// Text describes code, or "Unknown status code"
func Text(code int16) string {
	if t, ok := texts[code]; ok {
		return t
	}
	return "Unknown status code"
}
