package service

import "errors"

// Domain errors. Handlers map these onto HTTP statuses; anything else is an
// internal failure.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrMotorcycleNotFound = errors.New("motorcycle not found")
)
