package apperrors

import "errors"

// Resource errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrUniversityNotFound = errors.New("university not found")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Authorization errors
var (
	ErrPermissionDenied = errors.New("permission denied")
)

// Backend errors
var (
	// ErrBackendFailure marks relational store failures. These are surfaced
	// per request, never process-fatal.
	ErrBackendFailure = errors.New("backend failure")
)

// Wire codes returned in {"error": "<code>"} bodies.
const (
	CodeStudentNotFound    = "student_not_found"
	CodeUniversityNotFound = "university_not_found"
	CodeInvalidCredentials = "invalid_credentials"
	CodeUnauthorized       = "unauthorized"
	CodeInvalidToken       = "invalid_token"
	CodeForbidden          = "forbidden"
	CodeBackendFailure     = "backend_failure"
)

// Is returns whether target matches err or any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
