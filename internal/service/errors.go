package service

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrUploadFailed       = errors.New("document upload failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
