package application

import (
	"context"
	"encoding/base64"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/thanhpk/randstr"
	"golang.org/x/sync/errgroup"

	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
	"github.com/cryptilo/cryptilo-daemon/pkg/ledger"
	"github.com/cryptilo/cryptilo-daemon/pkg/wallet"
)

// TransferState is the position of a transfer flow in its fixed step order.
type TransferState int

const (
	TransferStateAwaitingPassword TransferState = iota
	TransferStateAwaitingConfirmation
	TransferStateExecuting
	TransferStateDone
	TransferStateFailed
)

func (s TransferState) String() string {
	switch s {
	case TransferStateAwaitingPassword:
		return "awaiting password"
	case TransferStateAwaitingConfirmation:
		return "awaiting confirmation"
	case TransferStateExecuting:
		return "executing"
	case TransferStateDone:
		return "done"
	case TransferStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TransferPreview is what a front end shows before asking for confirmation.
// The fee is valid only for the blockhash the flow fetched it against.
type TransferPreview struct {
	FromAddress string
	ToAddress   string
	Amount      uint64
	Fee         uint64
	Balance     uint64
	Blockhash   string
}

// TransferFlow walks a transfer through password check, fee preview,
// confirmation and broadcast, in that order and no other. The first failing
// step puts the flow in its terminal failed state. The decrypted signing key
// never outlives the step that needed it.
type TransferFlow struct {
	opID        string
	username    string
	walletIndex uint32
	toAddress   string
	amount      uint64

	state     TransferState
	password  string
	preview   *TransferPreview
	signature string
	err       error

	svc           *transactionService
	ledgerService ledger.Service
	mtx           sync.Mutex
}

func newTransferFlow(
	svc *transactionService,
	username string, walletIndex uint32, toAddress string, amount uint64,
) *TransferFlow {
	return &TransferFlow{
		opID:        randstr.Hex(8),
		username:    username,
		walletIndex: walletIndex,
		toAddress:   toAddress,
		amount:      amount,
		state:       TransferStateAwaitingPassword,
		svc:         svc,
	}
}

// OpID is the flow's correlation id, used in logs only.
func (f *TransferFlow) OpID() string { return f.opID }

// State returns the flow's current state.
func (f *TransferFlow) State() TransferState {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.state
}

// Preview returns the fee preview once the password step has completed.
func (f *TransferFlow) Preview() *TransferPreview {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.preview
}

// Signature returns the broadcasted transaction's signature once done.
func (f *TransferFlow) Signature() string {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.signature
}

// Err returns the error that put the flow in its failed state, if any.
func (f *TransferFlow) Err() error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.err
}

// SubmitPassword verifies the password, proves the wallet's signing key opens
// with it, checks the balance against the amount plus the quoted fee and
// moves the flow to awaiting confirmation. The decrypted key is wiped before
// returning, it is derived again only at execution time.
func (f *TransferFlow) SubmitPassword(ctx context.Context, password string) (*TransferPreview, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	if f.state != TransferStateAwaitingPassword {
		return nil, ErrInvalidTransferState
	}

	user, err := f.svc.repoManager.UserRepository().GetUser(ctx, f.username)
	if err != nil {
		return nil, f.fail(err)
	}
	record, err := user.GetWallet(f.walletIndex)
	if err != nil {
		return nil, f.fail(err)
	}
	if !user.IsValidPassword(password) {
		return nil, f.fail(domain.ErrInvalidPassword)
	}
	secretKey, err := record.DecryptKey(password)
	if err != nil {
		return nil, f.fail(err)
	}
	zeroSecretKey(secretKey)

	ledgerService, err := f.svc.ledgerService(ctx)
	if err != nil {
		return nil, f.fail(err)
	}

	var balance uint64
	var blockhash string
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		balance, err = ledgerService.GetBalance(egCtx, record.PublicKey)
		return err
	})
	eg.Go(func() error {
		var err error
		blockhash, err = ledgerService.GetLatestBlockhash(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, f.fail(err)
	}

	if balance < f.amount {
		return nil, f.fail(ErrInsufficientFunds)
	}

	tx, err := wallet.NewTransferTransaction(wallet.NewTransferTransactionOpts{
		FromAddress:     record.PublicKey,
		ToAddress:       f.toAddress,
		Lamports:        f.amount,
		RecentBlockhash: blockhash,
	})
	if err != nil {
		return nil, f.fail(err)
	}
	fee, err := ledgerService.GetFeeForMessage(
		ctx, base64.StdEncoding.EncodeToString(tx.Message.Serialize()),
	)
	if err != nil {
		return nil, f.fail(err)
	}

	if f.amount <= fee {
		return nil, f.fail(ErrInsufficientAmount)
	}
	if balance < fee || balance-fee < f.amount {
		return nil, f.fail(ErrInsufficientFunds)
	}

	f.password = password
	f.ledgerService = ledgerService
	f.preview = &TransferPreview{
		FromAddress: record.PublicKey,
		ToAddress:   f.toAddress,
		Amount:      f.amount,
		Fee:         fee,
		Balance:     balance,
		Blockhash:   blockhash,
	}
	f.state = TransferStateAwaitingConfirmation

	log.Debugf("transfer %s: quoted fee %d for amount %d", f.opID, fee, f.amount)
	return f.preview, nil
}

// Confirm signs the previewed transaction and broadcasts it. The transaction
// is anchored to the blockhash the fee was quoted against, so the preview the
// user confirmed is the one that executes.
func (f *TransferFlow) Confirm(ctx context.Context) (string, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	if f.state != TransferStateAwaitingConfirmation {
		return "", ErrInvalidTransferState
	}
	f.state = TransferStateExecuting

	password := f.password
	f.password = ""

	user, err := f.svc.repoManager.UserRepository().GetUser(ctx, f.username)
	if err != nil {
		return "", f.fail(err)
	}
	record, err := user.GetWallet(f.walletIndex)
	if err != nil {
		return "", f.fail(err)
	}

	tx, err := wallet.NewTransferTransaction(wallet.NewTransferTransactionOpts{
		FromAddress:     record.PublicKey,
		ToAddress:       f.toAddress,
		Lamports:        f.amount,
		RecentBlockhash: f.preview.Blockhash,
	})
	if err != nil {
		return "", f.fail(err)
	}

	secretKey, err := record.DecryptKey(password)
	if err != nil {
		return "", f.fail(err)
	}
	err = wallet.SignTransaction(wallet.SignTransactionOpts{
		Tx:        tx,
		SecretKey: secretKey,
	})
	zeroSecretKey(secretKey)
	if err != nil {
		return "", f.fail(err)
	}

	rawTx, err := tx.Serialize()
	if err != nil {
		return "", f.fail(err)
	}
	signature, err := f.ledgerService.BroadcastTransaction(
		ctx, base64.StdEncoding.EncodeToString(rawTx),
	)
	if err != nil {
		return "", f.fail(err)
	}

	f.signature = signature
	f.state = TransferStateDone
	log.Infof("transfer %s: broadcasted with signature %s", f.opID, signature)
	return signature, nil
}

// Abandon drops the flow before execution. A flow that started executing can
// not be abandoned anymore.
func (f *TransferFlow) Abandon() error {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	switch f.state {
	case TransferStateAwaitingPassword, TransferStateAwaitingConfirmation:
		f.fail(ErrTransferAbandoned)
		return nil
	default:
		return ErrInvalidTransferState
	}
}

func (f *TransferFlow) fail(err error) error {
	f.password = ""
	f.state = TransferStateFailed
	f.err = err
	log.Warnf("transfer %s: aborted: %v", f.opID, err)
	return err
}

func zeroSecretKey(key []byte) {
	for i := range key {
		key[i] = 0
	}
}
