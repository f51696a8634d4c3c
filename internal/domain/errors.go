package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidPayload = errors.New("invalid payload")
)
