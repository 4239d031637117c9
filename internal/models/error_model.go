package models

// ErrorResponse is the JSON body of every error answer.
type ErrorResponse struct {
	Message string `json:"message"`           // A high-level error message
	Details string `json:"details,omitempty"` // More specific details about the error, if available
}
