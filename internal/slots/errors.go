package slots

import "errors"

var (
	ErrNotFound     = errors.New("slot empty")
	ErrInvalidKey   = errors.New("invalid slot key")
	ErrEmptyPayload = errors.New("empty payload")
)
