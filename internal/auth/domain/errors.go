package domain

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried by every client-facing auth error.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeVerificationFailed = "VERIFICATION_FAILED"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeNotRegistered      = "NOT_REGISTERED"
	CodeCreateFailed       = "CREATE_FAILED"
	CodeIssuanceFailed     = "ISSUANCE_FAILED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInternal           = "INTERNAL_ERROR"
)

func newAuthError(message string, category goerrors.Category, status int, code string) *goerrors.Error {
	return goerrors.New(message, category).
		WithCode(status).
		WithTextCode(code)
}

func InvalidInput(message string) error {
	return newAuthError(message, goerrors.CategoryBadInput, http.StatusBadRequest, CodeInvalidInput)
}

// VerificationFailed is returned for every identity verification failure.
// The cause is deliberately not part of the message.
func VerificationFailed() error {
	return newAuthError("Google token verification failed", goerrors.CategoryBadInput, http.StatusBadRequest, CodeVerificationFailed)
}

func AlreadyExists() error {
	return newAuthError("email already registered", goerrors.CategoryConflict, http.StatusConflict, CodeAlreadyExists)
}

func NotRegistered() error {
	return newAuthError("email is not registered", goerrors.CategoryNotFound, http.StatusNotFound, CodeNotRegistered)
}

func CreateFailed(cause error) error {
	return wrapAuthError(cause, "failed to create user", goerrors.CategoryBadInput, http.StatusBadRequest, CodeCreateFailed)
}

func IssuanceFailed(cause error) error {
	return wrapAuthError(cause, "failed to issue session tokens", goerrors.CategoryInternal, http.StatusInternalServerError, CodeIssuanceFailed)
}

func Unauthorized() error {
	return newAuthError("invalid or expired token", goerrors.CategoryAuth, http.StatusUnauthorized, CodeUnauthorized)
}

func wrapAuthError(cause error, message string, category goerrors.Category, status int, code string) error {
	if cause == nil {
		return newAuthError(message, category, status, code)
	}
	return goerrors.Wrap(cause, category, message).
		WithCode(status).
		WithTextCode(code)
}

// IsKind reports whether err carries the given text code.
func IsKind(err error, code string) bool {
	var authErr *goerrors.Error
	if !goerrors.As(err, &authErr) {
		return false
	}
	return authErr.TextCode == code
}
