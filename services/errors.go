package services

import "errors"

// Sentinel errors shared by all record services. Controllers translate
// these into the HTTP error contract.
var (
	// ErrNotFound indicates the requested id has no matching row.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidStatus indicates an order status outside the allowed set.
	// The offending value is never persisted.
	ErrInvalidStatus = errors.New("invalid order status")
)
