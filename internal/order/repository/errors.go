package repository

import "errors"

var (
	ErrFailedToGet  = errors.New("failed to get order")
	ErrFailedToList = errors.New("failed to list orders")
)
