package ecies

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/PolarWolf314/manuka/internal/codec"
	merrors "github.com/PolarWolf314/manuka/internal/errors"
)

// Prefix marks an encrypted value on disk.
const Prefix = "encrypted:"

const (
	ephemeralLen = 33
	nonceLen     = 12
	tagLen       = 16

	// minEnvelopeLen is the smallest valid envelope: an empty plaintext
	// still carries the ephemeral point, the nonce, and the full tag.
	minEnvelopeLen = ephemeralLen + nonceLen + tagLen
)

// IsEncrypted reports whether a value carries the encrypted prefix.
func IsEncrypted(value string) bool {
	return strings.HasPrefix(value, Prefix)
}

// Encrypt seals a UTF-8 plaintext against a recipient's compressed public
// key and returns "encrypted:" + base64(ephemeral ‖ nonce ‖ ciphertext‖tag).
func Encrypt(plaintext, recipientPublicHex string) (string, error) {
	recipient, err := parsePublicKey(recipientPublicHex)
	if err != nil {
		return "", err
	}

	ephemeral, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return "", fmt.Errorf("failed to sample ephemeral scalar: %w", merrors.ErrRngFailure)
	}
	defer ephemeral.Zero()

	key := sharedKey(ephemeral, recipient)
	defer zeroBytes(key)

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to sample nonce: %w", merrors.ErrRngFailure)
	}

	aead, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, merrors.ErrEncryptionFailed)
	}

	envelope := make([]byte, 0, ephemeralLen+nonceLen+len(plaintext)+tagLen)
	envelope = append(envelope, ephemeral.PubKey().SerializeCompressed()...)
	envelope = append(envelope, nonce...)
	envelope = aead.Seal(envelope, nonce, []byte(plaintext), nil)

	return Prefix + codec.B64Encode(envelope), nil
}

// Decrypt opens an "encrypted:" value with a private scalar and returns the
// UTF-8 plaintext. A tag mismatch, including a flipped byte in the nonce,
// ciphertext or tag, fails with ErrDecryptionFailed. A flipped ephemeral
// byte fails with ErrInvalidEnvelope when the bytes no longer encode a
// curve point, and with ErrDecryptionFailed otherwise.
func Decrypt(value, privateHex string) (string, error) {
	if !IsEncrypted(value) {
		return "", fmt.Errorf("value does not carry the %q prefix: %w", Prefix, merrors.ErrInvalidEnvelope)
	}

	envelope, err := codec.B64Decode(value[len(Prefix):])
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, merrors.ErrInvalidEnvelope)
	}
	if len(envelope) < minEnvelopeLen {
		return "", fmt.Errorf("envelope is %d bytes, want at least %d: %w", len(envelope), minEnvelopeLen, merrors.ErrInvalidEnvelope)
	}

	ephemeral, err := secp256k1.ParsePubKey(envelope[:ephemeralLen])
	if err != nil {
		return "", fmt.Errorf("bad ephemeral point: %w", merrors.ErrInvalidEnvelope)
	}
	nonce := envelope[ephemeralLen : ephemeralLen+nonceLen]
	sealed := envelope[ephemeralLen+nonceLen:]

	priv, err := parsePrivateKey(privateHex)
	if err != nil {
		return "", err
	}
	defer priv.Zero()

	key := sharedKey(priv, ephemeral)
	defer zeroBytes(key)

	aead, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, merrors.ErrDecryptionFailed)
	}

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", merrors.ErrDecryptionFailed
	}
	return string(plaintext), nil
}

// sharedKey computes the ECDH shared point and hashes its compressed
// encoding with SHA-256. This derivation, with no KDF label, is the wire
// compatibility hinge: both sides of every envelope must agree on it.
func sharedKey(priv *secp256k1.PrivateKey, pub *secp256k1.PublicKey) []byte {
	var point, product secp256k1.JacobianPoint
	pub.AsJacobian(&point)
	secp256k1.ScalarMultNonConst(&priv.Key, &point, &product)
	product.ToAffine()

	shared := secp256k1.NewPublicKey(&product.X, &product.Y)
	digest := sha256.Sum256(shared.SerializeCompressed())
	return digest[:]
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
