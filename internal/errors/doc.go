// Package errors provides typed error values for manuka.
//
// Using sentinel errors allows callers to handle specific conditions
// programmatically with errors.Is() rather than string matching. Packages
// that need structural detail (encoding errors with a reason, missing
// private keys with the public key) define their own struct types that
// unwrap to the sentinels defined here. Parse errors with line and column
// are dotenv.ParseError values and have no sentinel.
//
// # Error Categories
//
//   - Key errors: malformed or unresolvable key material
//   - Envelope errors: sealing and opening failures
//   - Encoding errors: hex/base64 decode failures
//   - Command errors: $(...) substitution failures
//   - File errors: env file discovery and lookup
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(raw) < minEnvelopeLen {
//	    return "", fmt.Errorf("envelope is %d bytes: %w", len(raw), errors.ErrInvalidEnvelope)
//	}
//
// Handle them at the CLI layer:
//
//	if errors.Is(err, merrors.ErrMissingPrivateKey) {
//	    // point the user at .env.keys / DOTENV_PRIVATE_KEY
//	}
package errors
