package httpapi

import "errors"

var (
	ErrInvalidContentType = errors.New("content type must be application/json")
	ErrNullBody           = errors.New("request body must not be null")
	ErrMalformedBody      = errors.New("malformed JSON body")
	ErrBodyTooLarge       = errors.New("request body too large")
)
