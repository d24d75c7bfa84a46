package service

import "github.com/pkg/errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrUnsupportedImage   = errors.New("unsupported image type")
	ErrStorageDisabled    = errors.New("image storage is not configured")
)
