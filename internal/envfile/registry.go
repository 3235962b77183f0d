package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/manuka/internal/dotenv"
	"github.com/PolarWolf314/manuka/internal/ecies"
	merrors "github.com/PolarWolf314/manuka/internal/errors"
)

const (
	// PublicKeyVar names the entry holding a file's encryption public key.
	PublicKeyVar = "DOTENV_PUBLIC_KEY"
	// PrivateKeyVar is the base name for private key entries and
	// environment variables; per-environment files append a suffix.
	PrivateKeyVar = "DOTENV_PRIVATE_KEY"
	// KeysFileName is the sibling file that holds private keys. It must
	// never be committed to version control.
	KeysFileName = ".env.keys"
)

// MissingPrivateKeyError indicates no private key could be resolved for
// the public key a file was encrypted against.
type MissingPrivateKeyError struct {
	PublicKey string
}

func (e *MissingPrivateKeyError) Error() string {
	if e.PublicKey == "" {
		return "no private key available and the file has no " + PublicKeyVar + " entry"
	}
	return fmt.Sprintf("no private key available for public key %s", e.PublicKey)
}

func (e *MissingPrivateKeyError) Unwrap() error {
	return merrors.ErrMissingPrivateKey
}

// PrivateKeyVarName derives the private key variable name for an env file:
// DOTENV_PRIVATE_KEY for ".env" itself, DOTENV_PRIVATE_KEY_<SUFFIX> for
// ".env.<name>", where the suffix is the upper-cased remainder with
// non-alphanumeric characters stripped (".env.production" -> PRODUCTION).
func PrivateKeyVarName(envPath string) string {
	base := filepath.Base(envPath)
	rest, ok := strings.CutPrefix(base, ".env.")
	if !ok {
		return PrivateKeyVar
	}
	var b strings.Builder
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		case c >= 'A' && c <= 'Z' || c >= '0' && c <= '9':
			b.WriteByte(c)
		}
	}
	if b.Len() == 0 {
		return PrivateKeyVar
	}
	return PrivateKeyVar + "_" + b.String()
}

// Registry maps public key hex to private key hex. It is built per
// operation from explicit sources; there is no global key state.
type Registry struct {
	keys map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{keys: make(map[string]string)}
}

// Add derives the public key for a private scalar and records the pair.
// A second entry for the same public key replaces the first.
func (r *Registry) Add(privateHex string) error {
	publicHex, err := ecies.DerivePublicKey(privateHex)
	if err != nil {
		return err
	}
	r.keys[publicHex] = privateHex
	return nil
}

// Lookup returns the private key for a public key hex.
func (r *Registry) Lookup(publicHex string) (string, bool) {
	priv, ok := r.keys[publicHex]
	return priv, ok
}

// Len returns the number of distinct keys held.
func (r *Registry) Len() int {
	return len(r.keys)
}

// LoadRegistry builds the key registry for one env file from, in order:
// the sibling .env.keys file (or keysPath when given), the process
// environment variables DOTENV_PRIVATE_KEY and the file's own suffixed
// variant, and finally an explicit override. Later sources replace earlier
// entries for the same public key. Unparseable keys from files and the
// environment are skipped; an invalid explicit override is an error.
func LoadRegistry(envPath, keysPath, override string) (*Registry, error) {
	r := NewRegistry()

	if keysPath == "" {
		keysPath = filepath.Join(filepath.Dir(envPath), KeysFileName)
	}
	if data, err := os.ReadFile(keysPath); err == nil {
		f := dotenv.Parse(string(data))
		for _, entry := range f.Entries() {
			if !strings.HasPrefix(entry.Key, PrivateKeyVar) {
				continue
			}
			// Keys for other env files live here too; each one is usable
			// because lookup goes by derived public key.
			_ = r.Add(entry.Value())
		}
	}

	for _, name := range []string{PrivateKeyVar, PrivateKeyVarName(envPath)} {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			_ = r.Add(v)
		}
	}

	if override != "" {
		if err := r.Add(override); err != nil {
			return nil, err
		}
	}
	return r, nil
}
