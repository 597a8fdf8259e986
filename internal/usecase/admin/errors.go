package admin

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials covers unknown email and wrong password alike,
	// so login responses do not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)
