package repository

import "errors"

var (
	ErrFailedToSave = errors.New("failed to save record")
	ErrFailedToGet  = errors.New("failed to get record")
)
