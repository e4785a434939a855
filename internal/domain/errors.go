package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrNoSession          = errors.New("no session record")
	ErrMalformedSession   = errors.New("malformed session record")
	ErrLoginInFlight      = errors.New("login already in flight")
)
