package services

import (
	"errors"

	"github.com/shashiranjanraj/meera/app/repositories"
)

// ErrNotFound re-exports the repository sentinel so controllers depend on
// the service layer only.
var ErrNotFound = repositories.ErrNotFound

var (
	// ErrDuplicateUser means the email is already registered.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidEmail means the email failed format validation.
	ErrInvalidEmail = errors.New("please enter a valid email")

	// ErrWeakPassword means the password is shorter than 8 characters.
	ErrWeakPassword = errors.New("please enter a strong password")

	// ErrUserNotFound means no account matches the login email.
	ErrUserNotFound = errors.New("user doesn't exist")

	// ErrInvalidCredentials means the password (or admin credential pair)
	// did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAdminNotConfigured means the admin email/password pair is unset.
	ErrAdminNotConfigured = errors.New("admin credentials not set")

	// ErrUploadFailed aborts the enclosing operation; no partial document
	// is persisted when any image upload fails.
	ErrUploadFailed = errors.New("image upload failed")
)
