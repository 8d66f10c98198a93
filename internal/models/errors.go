package models

import "errors"

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrUnavailable        = errors.New("models: backend unavailable")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrWeakPassword       = errors.New("models: weak password")
	ErrInvalidEmail       = errors.New("models: invalid email")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrNotAuthenticated   = errors.New("models: not authenticated")
	ErrAlreadyReviewed    = errors.New("models: user already reviewed")
)
