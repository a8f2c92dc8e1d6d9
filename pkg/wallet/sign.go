package wallet

import (
	"bytes"
	"crypto/ed25519"
)

// SignTransactionOpts is the struct given to the SignTransaction method
type SignTransactionOpts struct {
	Tx        *Transaction
	SecretKey ed25519.PrivateKey
}

func (o SignTransactionOpts) validate() error {
	if o.Tx == nil {
		return ErrNullTransaction
	}
	if len(o.SecretKey) != ed25519.PrivateKeySize {
		return ErrInvalidSecretKey
	}
	return nil
}

// SignTransaction signs the transaction's message with the provided secret
// key and stores the signature at the signer's position. The key's public
// half must match one of the message's required signer accounts.
func SignTransaction(opts SignTransactionOpts) error {
	if err := opts.validate(); err != nil {
		return err
	}

	publicKey := opts.SecretKey.Public().(ed25519.PublicKey)

	signerIndex := -1
	numSigners := int(opts.Tx.Message.NumRequiredSignatures)
	for i := 0; i < numSigners && i < len(opts.Tx.Message.AccountKeys); i++ {
		if bytes.Equal(opts.Tx.Message.AccountKeys[i][:], publicKey) {
			signerIndex = i
			break
		}
	}
	if signerIndex < 0 {
		return ErrUnknownSigner
	}

	msg := opts.Tx.Message.Serialize()
	sig := ed25519.Sign(opts.SecretKey, msg)

	for len(opts.Tx.Signatures) < numSigners {
		opts.Tx.Signatures = append(opts.Tx.Signatures, [signatureLen]byte{})
	}
	copy(opts.Tx.Signatures[signerIndex][:], sig)

	return nil
}
