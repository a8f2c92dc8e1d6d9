package wallet

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	publicKeyLen = 32
	blockhashLen = 32
	signatureLen = 64

	// systemTransferIndex is the instruction index of the native transfer
	// within the system program's instruction set.
	systemTransferIndex = uint32(2)
)

// SystemProgramID is the account of the ledger's native system program, the
// owner of all plain value-transfer instructions.
var SystemProgramID = [publicKeyLen]byte{}

// CompiledInstruction references its program and accounts by index into the
// message's account key list, following the ledger's wire format.
type CompiledInstruction struct {
	ProgramIDIndex uint8
	Accounts       []uint8
	Data           []byte
}

// Message is the signed payload of a transaction: a header declaring the
// signer/read-only split of the account list, the account keys themselves,
// the recent blockhash bounding the transaction's validity window and the
// instruction list.
type Message struct {
	NumRequiredSignatures       uint8
	NumReadonlySignedAccounts   uint8
	NumReadonlyUnsignedAccounts uint8
	AccountKeys                 [][publicKeyLen]byte
	RecentBlockhash             [blockhashLen]byte
	Instructions                []CompiledInstruction
}

// Serialize encodes the message in the ledger's wire format. Variable-length
// lists are prefixed with their length in compact-u16 encoding.
func (m *Message) Serialize() []byte {
	buf := new(bytes.Buffer)

	buf.WriteByte(m.NumRequiredSignatures)
	buf.WriteByte(m.NumReadonlySignedAccounts)
	buf.WriteByte(m.NumReadonlyUnsignedAccounts)

	buf.Write(encodeCompactU16(len(m.AccountKeys)))
	for _, key := range m.AccountKeys {
		buf.Write(key[:])
	}

	buf.Write(m.RecentBlockhash[:])

	buf.Write(encodeCompactU16(len(m.Instructions)))
	for _, ix := range m.Instructions {
		buf.WriteByte(ix.ProgramIDIndex)
		buf.Write(encodeCompactU16(len(ix.Accounts)))
		for _, idx := range ix.Accounts {
			buf.WriteByte(idx)
		}
		buf.Write(encodeCompactU16(len(ix.Data)))
		buf.Write(ix.Data)
	}

	return buf.Bytes()
}

// Transaction pairs a message with the signatures of its required signers, in
// the order the signer accounts appear in the message.
type Transaction struct {
	Signatures [][signatureLen]byte
	Message    Message
}

// NewTransferTransactionOpts is the struct given to the NewTransferTransaction method
type NewTransferTransactionOpts struct {
	FromAddress     string
	ToAddress       string
	Lamports        uint64
	RecentBlockhash string
}

func (o NewTransferTransactionOpts) validate() error {
	if _, err := DecodeAddress(o.FromAddress); err != nil {
		return err
	}
	if _, err := DecodeAddress(o.ToAddress); err != nil {
		return err
	}
	if o.Lamports == 0 {
		return ErrZeroTransferAmount
	}
	if len(o.RecentBlockhash) <= 0 {
		return ErrNullRecentBlockhash
	}
	if _, err := decodeBlockhash(o.RecentBlockhash); err != nil {
		return err
	}
	return nil
}

// NewTransferTransaction builds the unsigned transaction moving the given
// amount of the ledger's smallest unit from one address to another, anchored
// to the provided recent blockhash. The sender is the only required signer.
func NewTransferTransaction(opts NewTransferTransactionOpts) (*Transaction, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	from, _ := DecodeAddress(opts.FromAddress)
	to, _ := DecodeAddress(opts.ToAddress)
	blockhash, _ := decodeBlockhash(opts.RecentBlockhash)

	// account list: sender (signer, writable), recipient (writable), program
	// (read-only). A self-transfer dedupes the recipient entry.
	accountKeys := [][publicKeyLen]byte{from}
	toIndex := uint8(0)
	if to != from {
		accountKeys = append(accountKeys, to)
		toIndex = 1
	}
	programIndex := uint8(len(accountKeys))
	accountKeys = append(accountKeys, SystemProgramID)

	data := make([]byte, 12)
	binary.LittleEndian.PutUint32(data[:4], systemTransferIndex)
	binary.LittleEndian.PutUint64(data[4:], opts.Lamports)

	msg := Message{
		NumRequiredSignatures:       1,
		NumReadonlySignedAccounts:   0,
		NumReadonlyUnsignedAccounts: 1,
		AccountKeys:                 accountKeys,
		RecentBlockhash:             blockhash,
		Instructions: []CompiledInstruction{
			{
				ProgramIDIndex: programIndex,
				Accounts:       []uint8{0, toIndex},
				Data:           data,
			},
		},
	}

	return &Transaction{
		Signatures: make([][signatureLen]byte, 1),
		Message:    msg,
	}, nil
}

// Serialize encodes the signed transaction in the ledger's wire format. It
// fails if any required signature is still missing.
func (t *Transaction) Serialize() ([]byte, error) {
	if len(t.Signatures) < int(t.Message.NumRequiredSignatures) {
		return nil, ErrMissingSignature
	}
	var empty [signatureLen]byte
	for _, sig := range t.Signatures {
		if sig == empty {
			return nil, ErrMissingSignature
		}
	}

	buf := new(bytes.Buffer)
	buf.Write(encodeCompactU16(len(t.Signatures)))
	for _, sig := range t.Signatures {
		buf.Write(sig[:])
	}
	buf.Write(t.Message.Serialize())

	return buf.Bytes(), nil
}

// DecodeAddress decodes the base58 text representation of a public key,
// enforcing the fixed 32-byte length.
func DecodeAddress(address string) ([publicKeyLen]byte, error) {
	var key [publicKeyLen]byte
	decoded := base58.Decode(address)
	if len(decoded) != publicKeyLen {
		return key, ErrInvalidAddress
	}
	copy(key[:], decoded)
	return key, nil
}

// EncodeAddress returns the base58 text representation of a raw public key.
func EncodeAddress(publicKey []byte) string {
	return base58.Encode(publicKey)
}

func decodeBlockhash(blockhash string) ([blockhashLen]byte, error) {
	var hash [blockhashLen]byte
	decoded := base58.Decode(blockhash)
	if len(decoded) != blockhashLen {
		return hash, ErrInvalidRecentBlockhash
	}
	copy(hash[:], decoded)
	return hash, nil
}

// encodeCompactU16 encodes a length in the ledger's compact-u16 format: 7
// bits per byte, least significant group first, high bit as continuation
// flag.
func encodeCompactU16(n int) []byte {
	out := make([]byte, 0, 3)
	v := uint16(n)
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			out = append(out, b)
			return out
		}
		out = append(out, b|0x80)
	}
}
