package errors

import "errors"

// Key errors indicate malformed or missing key material.
var (
	// ErrInvalidPublicKey indicates the public key is not a valid compressed secp256k1 point.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey indicates the private key is not a valid secp256k1 scalar.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrMissingPrivateKey indicates no private key could be resolved for an encrypted value.
	ErrMissingPrivateKey = errors.New("missing private key")
)

// Envelope and cipher errors indicate failures while sealing or opening values.
var (
	// ErrInvalidEnvelope indicates the encrypted envelope is malformed.
	ErrInvalidEnvelope = errors.New("invalid encrypted envelope")

	// ErrDecryptionFailed indicates the authentication tag did not verify.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEncryptionFailed indicates a value could not be sealed.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrRngFailure indicates the system random source could not be read.
	ErrRngFailure = errors.New("random number generation failed")
)

// Encoding errors indicate invalid textual representations of binary data.
var (
	// ErrInvalidEncoding indicates hex or base64 input that does not decode.
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// Command substitution errors indicate failures while running $(...) commands.
var (
	// ErrCommandTimeout indicates a substituted command exceeded its wall-clock limit.
	ErrCommandTimeout = errors.New("command substitution timed out")

	// ErrCommandFailed indicates a substituted command exited non-zero or could not start.
	ErrCommandFailed = errors.New("command substitution failed")
)

// File errors indicate issues locating or reading environment files.
var (
	// ErrFileNotFound indicates a requested environment file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrKeyNotFound indicates a requested variable is not defined in the file.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNoFilesFound indicates no environment files matched the search.
	ErrNoFilesFound = errors.New("no environment files found")
)
