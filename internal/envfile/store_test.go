package envfile

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/manuka/internal/dotenv"
	merrors "github.com/PolarWolf314/manuka/internal/errors"
)

func TestSetEncryptsByDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	if err := Set(path, "API_KEY", "s3cret", SetOptions{}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	content := readFile(t, path)
	if !strings.Contains(content, `API_KEY="encrypted:`) {
		t.Errorf("value not encrypted:\n%s", content)
	}
	if strings.Contains(content, "s3cret") {
		t.Error("plaintext written to file")
	}
	if !strings.Contains(content, PublicKeyVar+"=") {
		t.Error("public key entry missing from fresh file")
	}

	got, err := Get(path, "API_KEY", LoadOptions{})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "s3cret" {
		t.Errorf("Get = %q", got)
	}
}

func TestSetPlain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	if err := Set(path, "DEBUG", "true", SetOptions{Plain: true}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := readFile(t, path); got != "DEBUG=true\n" {
		t.Errorf("content = %q", got)
	}

	if err := Set(path, "NAME", "two words", SetOptions{Plain: true}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !strings.Contains(readFile(t, path), `NAME="two words"`) {
		t.Error("value needing quotes not quoted")
	}
}

func TestSetReplacesInPlace(t *testing.T) {
	dir := t.TempDir()
	path := writeEnv(t, dir, ".env", "# keep\nA=old\nB=stays\n")

	if err := Set(path, "A", "new", SetOptions{Plain: true}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := readFile(t, path); got != "# keep\nA=new\nB=stays\n" {
		t.Errorf("content = %q, layout not preserved", got)
	}
}

func TestSetRejectsInvalidKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := Set(path, "1BAD", "v", SetOptions{Plain: true}); err == nil {
		t.Error("Set accepted an invalid key")
	}
}

func TestGetAll(t *testing.T) {
	dir := t.TempDir()
	path := writeEnv(t, dir, ".env", "A=1\nB=${A}2\n")

	values, err := GetAll(path, LoadOptions{})
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if values["A"] != "1" || values["B"] != "12" {
		t.Errorf("values = %v", values)
	}
}

func TestGetMissingKey(t *testing.T) {
	dir := t.TempDir()
	path := writeEnv(t, dir, ".env", "A=1\n")

	_, err := Get(path, "NOPE", LoadOptions{})
	if !errors.Is(err, merrors.ErrKeyNotFound) {
		t.Errorf("err = %v, want ErrKeyNotFound", err)
	}
}

func TestSetTwiceSharesPublicKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	if err := Set(path, "FIRST", "one", SetOptions{}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	// A second Set reuses the public key written by the first.
	if err := Set(path, "SECOND", "two", SetOptions{}); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	f := dotenv.Parse(readFile(t, path))
	if n := len(f.Entries()); n != 3 { // public key + two values
		t.Errorf("entries = %d, want 3", n)
	}
	if countOccurrences(readFile(t, path), PublicKeyVar+"=") != 1 {
		t.Error("public key entry duplicated by second Set")
	}

	values, err := GetAll(path, LoadOptions{})
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if values["FIRST"] != "one" || values["SECOND"] != "two" {
		t.Errorf("values = %v", values)
	}
}
