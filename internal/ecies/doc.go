// Package ecies implements per-value hybrid encryption over secp256k1.
//
// # Scheme
//
// Encryption generates an ephemeral keypair, derives a shared point with
// the recipient's public key via ECDH, and seals the plaintext with
// AES-256-GCM:
//
//	key   = SHA-256(compressed(ephemeral_scalar · recipient_point))
//	value = "encrypted:" + base64(ephemeral_pub(33) ‖ nonce(12) ‖ ciphertext ‖ tag(16))
//
// The envelope is self-describing by length: 33 bytes of compressed
// ephemeral point, 12 bytes of nonce, and the remainder is ciphertext with
// the 16-byte tag appended. Every valid envelope decodes to at least 61
// bytes.
//
// # Keys
//
// Private keys are 32-byte scalars in [1, n), hex-encoded to 64 lowercase
// characters. Public keys are compressed points (0x02/0x03 prefix),
// hex-encoded to 66 characters. Private scalars and derived AES keys are
// zeroised when released; tag verification is the AEAD's constant-time
// comparison.
package ecies
