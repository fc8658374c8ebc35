package event

import "errors"

// Define errors
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrNilConfig           = errors.New("config cannot be nil")
	ErrNilEventRepo        = errors.New("event repository cannot be nil")
	ErrNilUserRepo         = errors.New("user repository cannot be nil")
	ErrNilRegistrationRepo = errors.New("registration repository cannot be nil")
)
