package errors

import "net/http"

// Error code constants. Codes are lowercase snake_case and stable across
// releases; clients branch on the code, not the message.

// Lookup and authorization codes.
const (
	CodeNotFound         = "not_found"
	CodeNotAuthorized    = "not_authorized"
	CodeNotAuthenticated = "not_authenticated"
	CodeConflict         = "conflict"
)

// Lifecycle codes.
const (
	CodeTaskAlreadyDecided    = "task_already_decided"
	CodeRequestAlreadyDecided = "request_already_decided"
	CodeNotEditable           = "not_editable"
)

// Validation codes.
const (
	CodeInvalidWorkflow    = "invalid_workflow"
	CodeInvalidPayload     = "invalid_payload"
	CodeMissingFields      = "missing_fields"
	CodeInvalidDelegate    = "invalid_delegate"
	CodeInvalidKind        = "invalid_kind"
	CodeInvalidUserID      = "invalid_user_id"
	CodeInvalidUserIDs     = "invalid_user_ids"
	CodeInvalidCredentials = "invalid_credentials"
	CodeInvalidScope       = "invalid_scope"
	CodeInvalidSteps       = "invalid_steps"
)

// Attachment codes.
const (
	CodeTooLarge     = "too_large"
	CodeStorageError = "storage_error"
)

// Convenience constructors using predefined codes.

// ErrTaskNotFound creates a task not found error.
func ErrTaskNotFound() *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    "task not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// ErrRequestNotFound creates a request not found error.
func ErrRequestNotFound() *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    "request not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// ErrTaskAlreadyDecided creates a conflict error for decided tasks.
func ErrTaskAlreadyDecided() *AppError {
	return &AppError{
		Code:       CodeTaskAlreadyDecided,
		Message:    "task has already been decided",
		HTTPStatus: http.StatusConflict,
	}
}

// ErrRequestAlreadyDecided creates a conflict error for closed requests.
func ErrRequestAlreadyDecided() *AppError {
	return &AppError{
		Code:       CodeRequestAlreadyDecided,
		Message:    "request is no longer pending",
		HTTPStatus: http.StatusConflict,
	}
}

// ErrNotAuthorized creates a 403 error for actors without authority.
func ErrNotAuthorized() *AppError {
	return &AppError{
		Code:       CodeNotAuthorized,
		Message:    "actor is not authorized for this action",
		HTTPStatus: http.StatusForbidden,
	}
}
