package envfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/PolarWolf314/manuka/internal/dotenv"
	"github.com/PolarWolf314/manuka/internal/ecies"
	merrors "github.com/PolarWolf314/manuka/internal/errors"
)

// DefaultCommandTimeout bounds each $(...) substitution.
const DefaultCommandTimeout = 5 * time.Second

// Diagnostic is a non-fatal problem reported during a load: a recoverable
// parse error or a failed command substitution. The message never carries
// plaintext values or key material.
type Diagnostic struct {
	Path    string
	Line    int
	Key     string
	Message string
}

func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(d.Path)
	if d.Line > 0 {
		fmt.Fprintf(&b, ":%d", d.Line)
	}
	if d.Key != "" {
		fmt.Fprintf(&b, " (%s)", d.Key)
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}

// LoadOptions controls Load.
type LoadOptions struct {
	// Overload is applied by MergeWithEnviron: when true, loaded bindings
	// overwrite pre-existing process bindings.
	Overload bool
	// AllowCommands enables $(...) substitution during expansion.
	AllowCommands bool
	// CommandTimeout bounds each substituted command; zero means
	// DefaultCommandTimeout.
	CommandTimeout time.Duration
	// PrivateKeyOverride is added to each file's registry alongside the
	// other key sources. It is used only when it matches the file's
	// DOTENV_PUBLIC_KEY, or directly when the file has no such entry.
	PrivateKeyOverride string
	// KeysFilePath overrides the sibling .env.keys location.
	KeysFilePath string
	// Diagnostics receives non-fatal problems. May be nil.
	Diagnostics func(Diagnostic)
}

// Load parses the files in order and resolves every entry to its
// effective value: encrypted values are decrypted (never expanded),
// plaintext values are expanded against the bindings resolved so far and
// then the process environment. Later files override earlier ones, later
// entries override earlier ones of the same key. A missing private key
// for an encrypted value aborts the load.
func Load(paths []string, opts LoadOptions) (map[string]string, error) {
	resolved := make(map[string]string)

	runner := newShellRunner(opts.CommandTimeout)
	for _, path := range paths {
		if err := loadFile(path, resolved, runner, opts); err != nil {
			return nil, err
		}
	}

	// The public key entry is plumbing, not configuration for the child.
	delete(resolved, PublicKeyVar)
	return resolved, nil
}

func loadFile(path string, resolved map[string]string, runner dotenv.CommandRunner, opts LoadOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, merrors.ErrFileNotFound)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	f := dotenv.Parse(string(data))

	report := func(d Diagnostic) {
		if opts.Diagnostics != nil {
			opts.Diagnostics(d)
		}
	}
	for _, pe := range f.Diagnostics {
		report(Diagnostic{Path: path, Line: pe.Line, Message: pe.Kind.String()})
	}

	// The registry is built lazily: plaintext-only files never touch key
	// sources.
	var registry *Registry
	privateKeyFor := func() (string, error) {
		if registry == nil {
			r, err := LoadRegistry(path, opts.KeysFilePath, opts.PrivateKeyOverride)
			if err != nil {
				return "", err
			}
			registry = r
		}
		return filePrivateKey(f, registry, opts.PrivateKeyOverride)
	}

	lookup := func(name string) (string, bool) {
		if v, ok := resolved[name]; ok {
			return v, true
		}
		return os.LookupEnv(name)
	}
	expandOpts := dotenv.ExpandOptions{AllowCommands: opts.AllowCommands, Run: runner}

	for _, entry := range f.Entries() {
		value := entry.Value()

		if ecies.IsEncrypted(value) {
			privateKey, err := privateKeyFor()
			if err != nil {
				return err
			}
			plaintext, err := ecies.Decrypt(value, privateKey)
			if err != nil {
				return fmt.Errorf("failed to decrypt %s in %s (line %d): %w", entry.Key, path, entry.Line, err)
			}
			resolved[entry.Key] = plaintext
			continue
		}

		// Single-quoted values are literal.
		if entry.Quote == dotenv.QuoteSingle {
			resolved[entry.Key] = value
			continue
		}

		expanded, problems := dotenv.Expand(value, lookup, expandOpts)
		for _, p := range problems {
			report(Diagnostic{Path: path, Line: entry.Line, Key: entry.Key, Message: p.String()})
		}
		resolved[entry.Key] = expanded
	}
	return nil
}

// filePrivateKey resolves the decryption key for one parsed file.
func filePrivateKey(f *dotenv.File, registry *Registry, override string) (string, error) {
	publicKey := ""
	if entry := f.Lookup(PublicKeyVar); entry != nil {
		publicKey = entry.Value()
	}
	if publicKey == "" {
		if override != "" {
			return override, nil
		}
		return "", &MissingPrivateKeyError{}
	}
	if priv, ok := registry.Lookup(publicKey); ok {
		return priv, nil
	}
	return "", &MissingPrivateKeyError{PublicKey: publicKey}
}

// newShellRunner returns a CommandRunner that executes commands through
// the host shell with a wall-clock timeout; the subprocess is killed when
// the limit passes.
func newShellRunner(timeout time.Duration) dotenv.CommandRunner {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return func(command string) (string, error) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var cmd *exec.Cmd
		if runtime.GOOS == "windows" {
			cmd = exec.CommandContext(ctx, "cmd", "/C", command)
		} else {
			cmd = exec.CommandContext(ctx, "sh", "-c", command)
		}
		out, err := cmd.Output()
		if err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return "", fmt.Errorf("after %s: %w", timeout, merrors.ErrCommandTimeout)
			}
			return "", fmt.Errorf("%v: %w", err, merrors.ErrCommandFailed)
		}
		return string(out), nil
	}
}

// MergeWithEnviron combines loaded bindings with the current process
// environment into exec-ready "KEY=value" strings. With overload, loaded
// bindings win; without, pre-existing process bindings are retained.
func MergeWithEnviron(loaded map[string]string, overload bool) []string {
	var merged []string
	if overload {
		for _, kv := range os.Environ() {
			key, _, _ := strings.Cut(kv, "=")
			if _, shadowed := loaded[key]; !shadowed {
				merged = append(merged, kv)
			}
		}
		for k, v := range loaded {
			merged = append(merged, k+"="+v)
		}
		return merged
	}

	merged = os.Environ()
	existing := make(map[string]bool, len(merged))
	for _, kv := range merged {
		key, _, _ := strings.Cut(kv, "=")
		existing[key] = true
	}
	for k, v := range loaded {
		if !existing[k] {
			merged = append(merged, k+"="+v)
		}
	}
	return merged
}
