package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert payment")
	ErrFailedToGet    = errors.New("failed to get payment")
	ErrFailedToList   = errors.New("failed to list payments")
	ErrFailedToUpdate = errors.New("failed to update payment")
	ErrFailedToDelete = errors.New("failed to delete payments")
)
