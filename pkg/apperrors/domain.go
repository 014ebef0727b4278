package apperrors

import "net/http"

// Factories and predefined errors for common business cases.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists reports a duplicate resource. Always a 409; duplicate
// registrations, applications, favorites and skills all go through here.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrInvalidStatus reports a status value outside the entity's allow-list.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInvalidOperation reports a request that is well-formed but not allowed
// by business rules (e.g. removing yourself from a company staff roster).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

var (
	// ErrInvalidCredentials deliberately does not say whether the email or the
	// password was wrong.
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)

	// ErrInvalidUserRole is returned by the role-specific login variants with a
	// descriptive message instead of a generic 401.
	ErrInvalidUserRole = New(CodeForbidden, "auth", "Account role does not match this login endpoint", http.StatusForbidden)

	ErrNotOwner = New(CodeForbidden, "auth", "You do not own this resource", http.StatusForbidden)

	ErrCannotModifySelf = New(CodeForbidden, "companies", "You cannot remove yourself from the staff roster", http.StatusForbidden)
)
