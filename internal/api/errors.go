package api

import "github.com/danielgtaylor/huma/v2"

// apiError serializes as the flat {"error": "..."} payload that every
// failing endpoint returns.
type apiError struct {
	status  int
	Message string `json:"error" doc:"Human-readable error message"`
}

// Error implements the error interface.
func (e *apiError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *apiError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *apiError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler rewires huma's error constructor so framework
// and handler errors share the flat error payload.
// Call this before registering routes.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, _ ...error) huma.StatusError {
		return &apiError{
			status:  status,
			Message: message,
		}
	}
}
