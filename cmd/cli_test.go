package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	logger "github.com/PolarWolf314/manuka/internal/logging"
)

// runCLI executes the root command with args and returns captured stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlagState()
	Logger = logger.Logger{}

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

// resetFlagState clears flag-bound package globals between executions.
func resetFlagState() {
	encryptFiles = nil
	encryptKeys = nil
	encryptExcludeKeys = nil
	encryptKeysFile = ""
	encryptPublicKey = ""
	decryptFiles = nil
	decryptKeysFile = ""
	decryptPrivateKey = ""
	setFile = ".env"
	setPlain = false
	setKeysFile = ""
	getFile = ".env"
	getPrivateKey = ""
	runFiles = nil
	runOverload = false
	runNoCommands = false
	runPrivateKey = ""
}

func TestKeypairCommand(t *testing.T) {
	out, err := runCLI(t, "keypair")
	if err != nil {
		t.Fatalf("keypair failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		t.Fatalf("unexpected output:\n%s", out)
	}
	pub := strings.TrimPrefix(lines[0], "DOTENV_PUBLIC_KEY=")
	priv := strings.TrimPrefix(lines[1], "DOTENV_PRIVATE_KEY=")
	if len(pub) != 66 {
		t.Errorf("public key length = %d, want 66", len(pub))
	}
	if len(priv) != 64 {
		t.Errorf("private key length = %d, want 64", len(priv))
	}
}

func TestEncryptThenGetCommands(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("SECRET=hello\nDEBUG=true\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	if _, err := runCLI(t, "encrypt", "-f", envPath, "-e", "DEBUG"); err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	content, err := os.ReadFile(envPath)
	if err != nil {
		t.Fatalf("Failed to read env file: %v", err)
	}
	if !strings.Contains(string(content), `SECRET="encrypted:`) {
		t.Errorf("SECRET not encrypted:\n%s", content)
	}
	if !strings.Contains(string(content), "DEBUG=true") {
		t.Error("excluded DEBUG was modified")
	}

	out, err := runCLI(t, "get", "SECRET", "-f", envPath)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("get output = %q", out)
	}
}

func TestSetAndDecryptCommands(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")

	if _, err := runCLI(t, "set", "TOKEN", "abc123", "-f", envPath); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	content, _ := os.ReadFile(envPath)
	if strings.Contains(string(content), "abc123") {
		t.Error("set wrote plaintext by default")
	}

	if _, err := runCLI(t, "decrypt", "-f", envPath); err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	content, _ = os.ReadFile(envPath)
	if !strings.Contains(string(content), "abc123") {
		t.Errorf("decrypt did not restore the value:\n%s", content)
	}
}

func TestLsCommand(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("A=1\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	out, err := runCLI(t, "ls", dir)
	if err != nil {
		t.Fatalf("ls failed: %v", err)
	}
	if !strings.Contains(out, ".env") {
		t.Errorf("ls output = %q", out)
	}
}

func TestExitCodeClassification(t *testing.T) {
	if got := ExitCode(nil); got != 0 {
		t.Errorf("ExitCode(nil) = %d", got)
	}
	if got := ExitCode(&FatalError{Err: os.ErrNotExist}); got != 2 {
		t.Errorf("crypto/I-O failure must exit 2, got %d", got)
	}
	if got := ExitCode(&ExitCodeError{Code: 42}); got != 42 {
		t.Errorf("child exit code must pass through, got %d", got)
	}
	if got := ExitCode(os.ErrInvalid); got != 1 {
		t.Errorf("user error must exit 1, got %d", got)
	}
}
