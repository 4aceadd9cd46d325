package domain

import "errors"

var (
	// ErrInvalidData signals a request payload that failed schema validation.
	ErrInvalidData = errors.New("invalid data")

	// ErrEmailTaken signals a signup against an email already present in the
	// store, soft-deleted rows included.
	ErrEmailTaken = errors.New("user email already exists")

	// ErrUserNotFound signals a required owning user that is absent or
	// already soft-deleted.
	ErrUserNotFound = errors.New("user not found")

	// ErrIncorrectPassword signals a failed credential check on signin or
	// restore.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrPasswordMismatch signals a profile update whose oldPassword does
	// not verify against the stored digest.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrNotFound signals that the target of a delete/restore/list is merely
	// absent. This is the "empty-signal" case, not an error to the client.
	ErrNotFound = errors.New("not found")

	// ErrInvalidToken signals a bearer token that failed verification.
	ErrInvalidToken = errors.New("invalid token")

	ErrInternal = errors.New("internal server error")
)
