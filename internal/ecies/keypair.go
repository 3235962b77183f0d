package ecies

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/PolarWolf314/manuka/internal/codec"
	merrors "github.com/PolarWolf314/manuka/internal/errors"
)

const (
	// PrivateKeyHexLen is the length of a hex-encoded private scalar.
	PrivateKeyHexLen = 64
	// PublicKeyHexLen is the length of a hex-encoded compressed point.
	PublicKeyHexLen = 66
)

// Keypair holds a secp256k1 private scalar and its compressed public point.
// Call Zero when the private material is no longer needed.
type Keypair struct {
	priv *secp256k1.PrivateKey
}

// GenerateKeypair samples a cryptographically strong scalar in [1, n).
func GenerateKeypair() (*Keypair, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to sample private scalar: %w", merrors.ErrRngFailure)
	}
	return &Keypair{priv: priv}, nil
}

// KeypairFromPrivateHex reconstructs a keypair from a 64-character hex scalar.
func KeypairFromPrivateHex(privateHex string) (*Keypair, error) {
	priv, err := parsePrivateKey(privateHex)
	if err != nil {
		return nil, err
	}
	return &Keypair{priv: priv}, nil
}

// PublicKey returns the compressed public point as 66 lowercase hex characters.
func (k *Keypair) PublicKey() string {
	return codec.HexEncode(k.priv.PubKey().SerializeCompressed())
}

// PrivateKey returns the private scalar as 64 lowercase hex characters.
func (k *Keypair) PrivateKey() string {
	return codec.HexEncode(k.priv.Serialize())
}

// Zero scrubs the private scalar. The keypair must not be used afterwards.
func (k *Keypair) Zero() {
	if k.priv != nil {
		k.priv.Zero()
	}
}

// DerivePublicKey validates a private scalar and returns the hex encoding
// of its compressed public point.
func DerivePublicKey(privateHex string) (string, error) {
	priv, err := parsePrivateKey(privateHex)
	if err != nil {
		return "", err
	}
	defer priv.Zero()
	return codec.HexEncode(priv.PubKey().SerializeCompressed()), nil
}

// parsePrivateKey decodes and validates a hex scalar: 32 bytes, nonzero,
// and strictly below the group order.
func parsePrivateKey(privateHex string) (*secp256k1.PrivateKey, error) {
	raw, err := codec.HexDecode(privateHex)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, merrors.ErrInvalidPrivateKey)
	}
	defer zeroBytes(raw)
	if len(raw) != 32 {
		return nil, fmt.Errorf("private key is %d bytes, want 32: %w", len(raw), merrors.ErrInvalidPrivateKey)
	}

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(raw)
	if overflow || scalar.IsZero() {
		scalar.Zero()
		return nil, fmt.Errorf("private key is not in [1, n): %w", merrors.ErrInvalidPrivateKey)
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}

// ValidatePublicKey checks that a hex string is a valid compressed
// secp256k1 point without performing any other work.
func ValidatePublicKey(publicHex string) error {
	_, err := parsePublicKey(publicHex)
	return err
}

// parsePublicKey decodes and validates a compressed point encoding.
func parsePublicKey(publicHex string) (*secp256k1.PublicKey, error) {
	raw, err := codec.HexDecode(publicHex)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, merrors.ErrInvalidPublicKey)
	}
	if len(raw) != 33 {
		return nil, fmt.Errorf("public key is %d bytes, want 33 compressed: %w", len(raw), merrors.ErrInvalidPublicKey)
	}
	pub, err := secp256k1.ParsePubKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, merrors.ErrInvalidPublicKey)
	}
	return pub, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
