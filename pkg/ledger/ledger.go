package ledger

import (
	"context"
	"errors"
	"fmt"
)

// ErrFeeUnavailable is returned when the node cannot price a message, which
// happens when the blockhash the message references has already expired.
var ErrFeeUnavailable = errors.New("fee unavailable for message, blockhash may have expired")

// Service is the representation of a remote ledger node that allows to read
// account balances, fetch the data a transaction must be anchored to, and
// broadcast signed transactions.
type Service interface {
	// GetBalance returns the spendable balance of the given address in the
	// ledger's base unit. Addresses unknown to the ledger have balance 0.
	GetBalance(ctx context.Context, address string) (uint64, error)
	// GetLatestBlockhash returns a fresh blockhash transactions can be
	// anchored to, in base58.
	GetLatestBlockhash(ctx context.Context) (string, error)
	// GetFeeForMessage returns the fee the ledger would charge for the given
	// base64-encoded message, valid only for the blockhash the message
	// references.
	GetFeeForMessage(ctx context.Context, base64Message string) (uint64, error)
	// BroadcastTransaction submits the given base64-encoded signed transaction
	// and returns its signature.
	BroadcastTransaction(ctx context.Context, base64Tx string) (string, error)
}

// RPCError is an error returned by the remote node itself, as opposed to a
// transport failure reaching it.
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
