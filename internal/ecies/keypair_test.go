package ecies

import (
	"errors"
	"strings"
	"testing"

	merrors "github.com/PolarWolf314/manuka/internal/errors"
)

func TestGenerateKeypairEncodings(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair failed: %v", err)
	}
	defer kp.Zero()

	pub := kp.PublicKey()
	priv := kp.PrivateKey()

	if len(pub) != PublicKeyHexLen {
		t.Errorf("public key length = %d, want %d", len(pub), PublicKeyHexLen)
	}
	if len(priv) != PrivateKeyHexLen {
		t.Errorf("private key length = %d, want %d", len(priv), PrivateKeyHexLen)
	}
	if !strings.HasPrefix(pub, "02") && !strings.HasPrefix(pub, "03") {
		t.Errorf("public key %q does not start with a compressed point prefix", pub)
	}
	if pub != strings.ToLower(pub) || priv != strings.ToLower(priv) {
		t.Error("key encodings must be lowercase hex")
	}
}

func TestDerivePublicKeyMatchesGenerate(t *testing.T) {
	for i := 0; i < 8; i++ {
		kp, err := GenerateKeypair()
		if err != nil {
			t.Fatalf("GenerateKeypair failed: %v", err)
		}
		derived, err := DerivePublicKey(kp.PrivateKey())
		if err != nil {
			t.Fatalf("DerivePublicKey failed: %v", err)
		}
		if derived != kp.PublicKey() {
			t.Errorf("derived %q != generated %q", derived, kp.PublicKey())
		}
		kp.Zero()
	}
}

func TestKeypairFromPrivateHexRoundtrip(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair failed: %v", err)
	}
	defer kp.Zero()

	restored, err := KeypairFromPrivateHex(kp.PrivateKey())
	if err != nil {
		t.Fatalf("KeypairFromPrivateHex failed: %v", err)
	}
	defer restored.Zero()

	if restored.PublicKey() != kp.PublicKey() {
		t.Errorf("restored public key mismatch")
	}
}

func TestDerivePublicKeyRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"not hex", "zz"},
		{"too short", "abcd"},
		{"zero scalar", strings.Repeat("00", 32)},
		{"at group order", "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"},
		{"above group order", strings.Repeat("ff", 32)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DerivePublicKey(c.in)
			if err == nil {
				t.Fatalf("DerivePublicKey(%q) succeeded, want error", c.in)
			}
			if !errors.Is(err, merrors.ErrInvalidPrivateKey) {
				t.Errorf("error does not match ErrInvalidPrivateKey: %v", err)
			}
		})
	}
}

func TestParsePublicKeyRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"not hex", "not-a-key"},
		{"wrong length", "02abcd"},
		{"uncompressed prefix", "04" + strings.Repeat("ab", 32)},
		{"not on curve", "02" + strings.Repeat("00", 32)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Encrypt("x", c.in)
			if err == nil {
				t.Fatalf("Encrypt with key %q succeeded, want error", c.in)
			}
			if !errors.Is(err, merrors.ErrInvalidPublicKey) {
				t.Errorf("error does not match ErrInvalidPublicKey: %v", err)
			}
		})
	}
}
