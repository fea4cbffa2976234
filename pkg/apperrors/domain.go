package apperrors

import "net/http"

// Factories and predefined values for the domain error taxonomy.
// ValidationError / NotFound / Forbidden / Conflict / InvalidState cover every
// failure a workflow operation may surface.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict reports a unique-constraint violation as a 409 rather than
// letting it corrupt state or surface as a 500.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidState reports an operation that is not legal in the entity's
// current lifecycle state.
func ErrInvalidState(domain, message string) *AppError {
	return New(CodeInvalidState, domain, message, http.StatusConflict)
}

var ErrInvalidUserRole = New(
	CodeValidationFailed,
	"auth",
	"Invalid user role",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrSelfReviewNotAllowed = New(
	CodeForbidden,
	"review",
	"You cannot review yourself",
	http.StatusForbidden,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrLastAdmin = New(
	CodeInvalidState,
	"user",
	"At least one admin account must remain",
	http.StatusConflict,
)

var ErrChatNotApproved = New(
	CodeForbidden,
	"chat",
	"Chat access for this offer has not been approved",
	http.StatusForbidden,
)
