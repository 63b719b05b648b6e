package calculator

import "errors"

var (
	ErrMissingPayer   = errors.New("expense must have a payer")
	ErrNoParticipants = errors.New("must have at least one participant")
	ErrZeroSubtotal   = errors.New("subtotal cannot be zero")
	ErrInvalidWorkers = errors.New("workers must be at least 1")
)
