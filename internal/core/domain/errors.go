package domain

import "errors"

var (
	// ErrInsufficientFunds is thrown when coin selection exhausts every
	// positive-effective-value output without covering target plus fee.
	ErrInsufficientFunds = errors.New("insufficient funds to cover target amount plus fee")
	// ErrInvalidTargetAmount is thrown when asking for a spend plan with a
	// non-positive target.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")
	// ErrTransactionNotFound is thrown when a transaction id is not present in
	// the fetched history page.
	ErrTransactionNotFound = errors.New("transaction not found in fetched history")
	// ErrInvalidTxHash ...
	ErrInvalidTxHash = errors.New("transaction hash is not a valid 32-byte hex string")
	// ErrNegativeValue ...
	ErrNegativeValue = errors.New("output value must not be negative")
)
