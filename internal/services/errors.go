package services

import "errors"

// ErrInvalidInput wraps validation failures; handlers map it to 400.
var ErrInvalidInput = errors.New("invalid input")
