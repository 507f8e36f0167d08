// Package common defines shared constants and sentinel errors used across
// the client layers of GophSession. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Session errors.
	ErrEmptyToken = errors.New("empty token")

	// Validation errors for user input and configuration.
	ErrInvalidInput = errors.New("invalid input")
)
