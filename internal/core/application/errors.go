package application

import "errors"

var (
	// ErrUnknownOperation ...
	ErrUnknownOperation = errors.New("operation must be one of spotprice, reserve, supply")
	// ErrInvalidConcurrency ...
	ErrInvalidConcurrency = errors.New("batch concurrency must be greater than zero")
)
