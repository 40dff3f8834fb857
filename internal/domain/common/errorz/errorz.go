package errorz

import "errors"

var (
	NotFound       = errors.New("not found")
	Forbidden      = errors.New("forbidden")
	InvalidPayload = errors.New("invalid payload")
)
