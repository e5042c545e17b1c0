package repository

import "errors"

// Shared repository errors for the chat domain.
var (
	ErrFailedToCreate = errors.New("failed to create record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToUpdate = errors.New("failed to update record")
)
