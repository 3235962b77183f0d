package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	merrors "github.com/PolarWolf314/manuka/internal/errors"
)

// InvalidEncodingError describes a hex or base64 decode failure.
type InvalidEncodingError struct {
	Encoding string // "hex" or "base64"
	Reason   string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Encoding, e.Reason)
}

// Unwrap allows errors.Is(err, errors.ErrInvalidEncoding).
func (e *InvalidEncodingError) Unwrap() error {
	return merrors.ErrInvalidEncoding
}

// HexEncode encodes bytes as lowercase hex.
func HexEncode(data []byte) string {
	return hex.EncodeToString(data)
}

// HexDecode decodes a hex string, accepting either case. Odd-length input
// and non-hex characters are rejected.
func HexDecode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, &InvalidEncodingError{Encoding: "hex", Reason: "odd length"}
	}
	data, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return nil, &InvalidEncodingError{Encoding: "hex", Reason: err.Error()}
	}
	return data, nil
}

// B64Encode encodes bytes as standard base64 with padding.
func B64Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// B64Decode decodes standard padded base64. Unknown characters, bad
// padding, non-canonical trailing bits, and trailing garbage are rejected.
func B64Decode(s string) ([]byte, error) {
	data, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, &InvalidEncodingError{Encoding: "base64", Reason: err.Error()}
	}
	return data, nil
}
