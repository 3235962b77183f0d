package envfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/manuka/internal/dotenv"
	"github.com/PolarWolf314/manuka/internal/ecies"
	merrors "github.com/PolarWolf314/manuka/internal/errors"
	"github.com/PolarWolf314/manuka/internal/utils"
)

// Get loads a single file and returns the effective value of one key.
func Get(path, key string, opts LoadOptions) (string, error) {
	values, err := Load([]string{path}, opts)
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", fmt.Errorf("%s in %s: %w", key, path, merrors.ErrKeyNotFound)
	}
	return value, nil
}

// GetAll loads a single file and returns every effective binding.
func GetAll(path string, opts LoadOptions) (map[string]string, error) {
	return Load([]string{path}, opts)
}

// SetOptions controls Set.
type SetOptions struct {
	// Plain writes the raw value instead of encrypting it.
	Plain bool
	// KeysFilePath overrides the sibling .env.keys location.
	KeysFilePath string
	// PublicKeyOverride bypasses the file's own DOTENV_PUBLIC_KEY.
	PublicKeyOverride string
}

// Set inserts or replaces a single entry. By default the value is
// encrypted against the file's public key, generating and persisting a
// keypair when the file has none; with Plain the raw value is written.
// A missing file is created.
func Set(path, key, value string, opts SetOptions) error {
	if !dotenv.IsValidKey(key) {
		return fmt.Errorf("%q is not a valid variable name", key)
	}

	var content string
	if data, err := os.ReadFile(path); err == nil {
		content = string(data)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	f := dotenv.Parse(content)

	quoted := ""
	var edits []dotenv.Edit

	if opts.Plain {
		if dotenv.NeedsQuoting(value) {
			quoted = dotenv.Quote(value)
		} else {
			quoted = value
		}
	} else {
		publicKey, privateKey, generated, err := resolvePublicKey(f, opts.PublicKeyOverride)
		if err != nil {
			return err
		}
		sealed, err := ecies.Encrypt(value, publicKey)
		if err != nil {
			return fmt.Errorf("failed to encrypt %s: %w", key, err)
		}
		quoted = `"` + sealed + `"`

		if f.Lookup(PublicKeyVar) == nil {
			edits = append(edits, headerEdit(f, publicKey))
		}
		if generated {
			if err := SavePrivateKey(opts.KeysFilePath, path, privateKey); err != nil {
				return err
			}
		}
	}

	if existing := f.Lookup(key); existing != nil {
		start, end := existing.ValueSpan()
		edits = append(edits, dotenv.Edit{Start: start, End: end, Text: quoted})
		return writeBack(path, f.Splice(edits))
	}

	out := f.Splice(edits)
	nl := f.LineEnding
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += nl
	}
	out += key + "=" + quoted + nl
	return utils.AtomicWriteFile(path, []byte(out), filePerm(path))
}

func filePerm(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0644
}
