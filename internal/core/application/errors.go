package application

import "errors"

var (
	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New("amount must be a positive number of base units")
	// ErrInsufficientAmount is thrown when the transferred amount would be
	// eaten entirely by the network fee
	ErrInsufficientAmount = errors.New("amount must exceed the network fee")
	// ErrInsufficientFunds ...
	ErrInsufficientFunds = errors.New("balance does not cover amount plus network fee")
	// ErrInvalidTransferState is thrown when a transfer step is invoked out
	// of order
	ErrInvalidTransferState = errors.New("operation not allowed in the current transfer state")
	// ErrTransferAbandoned ...
	ErrTransferAbandoned = errors.New("transfer abandoned before execution")
)
