package codec

import (
	"bytes"
	"errors"
	"testing"

	merrors "github.com/PolarWolf314/manuka/internal/errors"
)

func TestHexRoundtrip(t *testing.T) {
	data := []byte{0x00, 0x1f, 0xab, 0xff}
	s := HexEncode(data)
	if s != "001fabff" {
		t.Errorf("HexEncode = %q, want lowercase hex", s)
	}
	got, err := HexDecode(s)
	if err != nil {
		t.Fatalf("HexDecode failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Roundtrip mismatch: %x != %x", got, data)
	}
}

func TestHexDecodeCaseInsensitive(t *testing.T) {
	got, err := HexDecode("ABCDef01")
	if err != nil {
		t.Fatalf("HexDecode rejected uppercase: %v", err)
	}
	want := []byte{0xab, 0xcd, 0xef, 0x01}
	if !bytes.Equal(got, want) {
		t.Errorf("HexDecode = %x, want %x", got, want)
	}
}

func TestHexDecodeRejects(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"odd length", "abc"},
		{"non-hex character", "zz"},
		{"embedded space", "ab cd"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := HexDecode(c.in)
			if err == nil {
				t.Fatalf("HexDecode(%q) succeeded, want error", c.in)
			}
			if !errors.Is(err, merrors.ErrInvalidEncoding) {
				t.Errorf("error does not match ErrInvalidEncoding: %v", err)
			}
			var encErr *InvalidEncodingError
			if !errors.As(err, &encErr) || encErr.Encoding != "hex" {
				t.Errorf("expected hex InvalidEncodingError, got %#v", err)
			}
		})
	}
}

func TestB64Roundtrip(t *testing.T) {
	data := []byte("hello, envelope")
	s := B64Encode(data)
	got, err := B64Decode(s)
	if err != nil {
		t.Fatalf("B64Decode failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Roundtrip mismatch: %q != %q", got, data)
	}
}

func TestB64DecodeRejects(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"unknown character", "ab!d"},
		{"bad padding", "abcde==="},
		{"truncated", "abcde"},
		{"trailing garbage", "aGk=x"},
		{"non-canonical trailing bits", "aGF="},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := B64Decode(c.in)
			if err == nil {
				t.Fatalf("B64Decode(%q) succeeded, want error", c.in)
			}
			if !errors.Is(err, merrors.ErrInvalidEncoding) {
				t.Errorf("error does not match ErrInvalidEncoding: %v", err)
			}
		})
	}
}

func TestB64EmptyInput(t *testing.T) {
	got, err := B64Decode("")
	if err != nil {
		t.Fatalf("B64Decode(\"\") failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("B64Decode(\"\") = %v, want empty", got)
	}
}
