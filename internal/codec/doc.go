// Package codec provides strict hex and base64 encoding for key material
// and encrypted envelopes.
//
// Hex output is always lowercase (the external representation of keys);
// decoding is case-insensitive. Base64 uses the standard alphabet with
// padding, matching the envelope format. Decode failures are typed as
// *InvalidEncodingError and match errors.ErrInvalidEncoding.
package codec
