package core

import "errors"

// Errors returned by the services. Handlers map them onto HTTP statuses.
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrClassNotFound          = errors.New("class not found")
	ErrTeacherRequestNotFound = errors.New("teacher request not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrPaymentProvider        = errors.New("payment provider request failed")
	ErrEnrollmentNotRecorded  = errors.New("payment intent created but enrollment was not recorded")
	ErrAssignmentsNotSaved    = errors.New("assignments were not saved")
	ErrPromptRequired         = errors.New("prompt is required")
	ErrTextGeneration         = errors.New("text generation failed")
)
