package wallet

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// slip10 master key generation modifier for the ed25519 curve
var ed25519SeedModifier = []byte("ed25519 seed")

// KeyPair is an ed25519 signing key pair derived for a single account of the
// wallet. SecretKey embeds the public key in its last 32 bytes as usual for
// ed25519.
type KeyPair struct {
	PublicKey ed25519.PublicKey
	SecretKey ed25519.PrivateKey
}

// Address returns the base58 encoding of the public key, the canonical text
// representation of a ledger address.
func (k *KeyPair) Address() string {
	return base58.Encode(k.PublicKey)
}

// EncodeSecretKey returns the base58 encoding of the expanded secret key.
func (k *KeyPair) EncodeSecretKey() string {
	return base58.Encode(k.SecretKey)
}

// Zero wipes the secret key material. The key pair is unusable afterwards.
func (k *KeyPair) Zero() {
	zeroBytes(k.SecretKey)
	k.SecretKey = nil
}

// DecodeSecretKey decodes the base58 text representation of an expanded
// ed25519 secret key.
func DecodeSecretKey(encoded string) (ed25519.PrivateKey, error) {
	decoded := base58.Decode(encoded)
	if len(decoded) != ed25519.PrivateKeySize {
		return nil, ErrInvalidSecretKey
	}
	return ed25519.PrivateKey(decoded), nil
}

// DeriveSigningKeyPairOpts is the struct given to the DeriveSigningKeyPair method
type DeriveSigningKeyPairOpts struct {
	Account uint32
}

func (o DeriveSigningKeyPairOpts) validate() error {
	if o.Account > MaxHardenedValue {
		return ErrOutOfRangeDerivationPathAccount
	}
	return nil
}

// DeriveSigningKeyPair derives the key pair of the account at path
// m/44'/501'/account'/0'. Derivation is deterministic, the same (seed,
// account) always yields the same key pair, and every level is hardened.
func (w *Wallet) DeriveSigningKeyPair(opts DeriveSigningKeyPairOpts) (*KeyPair, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := w.validate(); err != nil {
		return nil, err
	}

	path, err := AccountDerivationPath(opts.Account)
	if err != nil {
		return nil, err
	}
	return deriveKeyPairForPath(w.seed, path)
}

// DeriveSigningKeyPairForPath derives the key pair at an arbitrary absolute
// hardened path. It is used by DeriveSigningKeyPair and exposed for callers
// that hold a path in its string form.
func (w *Wallet) DeriveSigningKeyPairForPath(strPath string) (*KeyPair, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}
	path, err := ParseDerivationPath(strPath)
	if err != nil {
		return nil, err
	}
	return deriveKeyPairForPath(w.seed, path)
}

func deriveKeyPairForPath(seed []byte, path DerivationPath) (*KeyPair, error) {
	node, err := masterKeyFromSeed(seed)
	if err != nil {
		return nil, err
	}
	for _, step := range path {
		node, err = node.deriveHardenedChild(step)
		if err != nil {
			return nil, err
		}
	}

	secret := ed25519.NewKeyFromSeed(node.key)
	node.zero()

	return &KeyPair{
		PublicKey: secret.Public().(ed25519.PublicKey),
		SecretKey: secret,
	}, nil
}

// slip10Node is an intermediate node of the SLIP-0010 key tree. Its chain
// code never leaves this package.
type slip10Node struct {
	key       []byte
	chainCode []byte
}

func masterKeyFromSeed(seed []byte) (*slip10Node, error) {
	if len(seed) <= 0 {
		return nil, ErrNullSeed
	}
	mac := hmac.New(sha512.New, ed25519SeedModifier)
	mac.Write(seed)
	sum := mac.Sum(nil)

	return &slip10Node{
		key:       sum[:32],
		chainCode: sum[32:],
	}, nil
}

func (n *slip10Node) deriveHardenedChild(index uint32) (*slip10Node, error) {
	if index < HardenedKeyStart {
		return nil, ErrNotHardenedDerivationPath
	}

	// data = 0x00 || parent key || ser32(index)
	data := make([]byte, 0, 37)
	data = append(data, 0x00)
	data = append(data, n.key...)
	data = appendUint32(data, index)

	mac := hmac.New(sha512.New, n.chainCode)
	mac.Write(data)
	sum := mac.Sum(nil)
	zeroBytes(data)

	return &slip10Node{
		key:       sum[:32],
		chainCode: sum[32:],
	}, nil
}

func (n *slip10Node) zero() {
	zeroBytes(n.key)
	zeroBytes(n.chainCode)
}

func appendUint32(b []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(b, buf[:]...)
}
