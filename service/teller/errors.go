package teller

import "errors"

// Domain errors. None of them is fatal: the console reports the message
// and keeps the menu loop running.
var (
	// ErrInvalidCredentials covers both an unknown account number and a
	// wrong PIN, so a caller cannot probe which account numbers exist.
	ErrInvalidCredentials = errors.New("invalid account number or PIN")

	ErrAccountExists      = errors.New("account number already exists")
	ErrEmptyAccountNumber = errors.New("account number must not be empty")
	ErrBadAmount          = errors.New("amount must be greater than zero")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrPinMismatch        = errors.New("current PIN does not match")
	ErrPinTooShort        = errors.New("PIN must be at least 4 characters")
)
