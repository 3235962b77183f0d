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

// publicKeyBanner precedes an inserted DOTENV_PUBLIC_KEY entry.
const publicKeyBanner = `#/-------------------[DOTENV_PUBLIC_KEY]--------------------/
#/            public-key encryption for .env files          /
#/       [how it works](https://dotenvx.com/encryption)     /
#/----------------------------------------------------------/`

// EncryptOptions controls EncryptFile.
type EncryptOptions struct {
	// IncludeKeys restricts encryption to the named keys. Empty means all.
	IncludeKeys []string
	// ExcludeKeys are never encrypted.
	ExcludeKeys []string
	// PublicKeyOverride bypasses the file's own DOTENV_PUBLIC_KEY.
	PublicKeyOverride string
	// KeysFilePath overrides the sibling .env.keys location for a newly
	// generated private key.
	KeysFilePath string
}

// EncryptResult reports what EncryptFile did.
type EncryptResult struct {
	PublicKey    string
	Encrypted    int
	GeneratedKey bool
}

// EncryptFile encrypts the eligible plaintext values of the file in place,
// preserving layout. The literal source value (quote-stripped, before any
// expansion) is what gets sealed, so encryption is idempotent and keeps
// the author's intent. Any per-entry failure aborts before the file is
// written. The rewrite is atomic: temp file, fsync, rename.
func EncryptFile(path string, opts EncryptOptions) (*EncryptResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, merrors.ErrFileNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	f := dotenv.Parse(string(data))

	publicKey, privateKey, generated, err := resolvePublicKey(f, opts.PublicKeyOverride)
	if err != nil {
		return nil, err
	}

	include := toSet(opts.IncludeKeys)
	exclude := toSet(opts.ExcludeKeys)

	var edits []dotenv.Edit
	encrypted := 0
	for _, entry := range f.Entries() {
		if !eligibleForEncryption(entry, include, exclude) {
			continue
		}
		sealed, err := ecies.Encrypt(entry.Value(), publicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt %s (line %d): %w", entry.Key, entry.Line, err)
		}
		start, end := entry.ValueSpan()
		edits = append(edits, dotenv.Edit{Start: start, End: end, Text: `"` + sealed + `"`})
		encrypted++
	}

	if f.Lookup(PublicKeyVar) == nil {
		edits = append(edits, headerEdit(f, publicKey))
	}

	if len(edits) > 0 {
		if err := writeBack(path, f.Splice(edits)); err != nil {
			return nil, err
		}
	}

	// Persist the private half only after the env file is safely rewritten.
	if generated {
		if err := SavePrivateKey(opts.KeysFilePath, path, privateKey); err != nil {
			return nil, err
		}
	}

	return &EncryptResult{PublicKey: publicKey, Encrypted: encrypted, GeneratedKey: generated}, nil
}

// DecryptOptions controls DecryptFile.
type DecryptOptions struct {
	// KeysFilePath overrides the sibling .env.keys location.
	KeysFilePath string
	// PrivateKeyOverride is added to the registry alongside the other key
	// sources. It is used only when it matches the file's
	// DOTENV_PUBLIC_KEY, or directly when the file has no such entry.
	PrivateKeyOverride string
}

// DecryptFile opens every encrypted value in place. The private key is
// resolved from the registry by the file's own DOTENV_PUBLIC_KEY entry.
// Plaintext entries are untouched; a file with no encrypted values is a
// no-op. Any per-entry failure aborts before the file is written.
func DecryptFile(path string, opts DecryptOptions) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%s: %w", path, merrors.ErrFileNotFound)
		}
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	f := dotenv.Parse(string(data))

	var sealed []*dotenv.Entry
	for _, entry := range f.Entries() {
		if ecies.IsEncrypted(entry.Value()) {
			sealed = append(sealed, entry)
		}
	}
	if len(sealed) == 0 {
		return 0, nil
	}

	privateKey, err := resolvePrivateKey(f, path, opts.KeysFilePath, opts.PrivateKeyOverride)
	if err != nil {
		return 0, err
	}

	var edits []dotenv.Edit
	for _, entry := range sealed {
		plaintext, err := ecies.Decrypt(entry.Value(), privateKey)
		if err != nil {
			return 0, fmt.Errorf("failed to decrypt %s (line %d): %w", entry.Key, entry.Line, err)
		}
		start, end := entry.ValueSpan()
		edits = append(edits, dotenv.Edit{Start: start, End: end, Text: emitValue(entry, plaintext)})
	}

	if err := writeBack(path, f.Splice(edits)); err != nil {
		return 0, err
	}
	return len(edits), nil
}

// resolvePublicKey determines the key to encrypt against: the override,
// then the file's DOTENV_PUBLIC_KEY entry, then a freshly generated
// keypair whose private half the caller must persist.
func resolvePublicKey(f *dotenv.File, override string) (publicKey, privateKey string, generated bool, err error) {
	publicKey = override
	if publicKey == "" {
		if entry := f.Lookup(PublicKeyVar); entry != nil {
			publicKey = entry.Value()
		}
	}
	if publicKey != "" {
		if err := ecies.ValidatePublicKey(publicKey); err != nil {
			return "", "", false, err
		}
		return publicKey, "", false, nil
	}

	kp, err := ecies.GenerateKeypair()
	if err != nil {
		return "", "", false, err
	}
	defer kp.Zero()
	return kp.PublicKey(), kp.PrivateKey(), true, nil
}

// resolvePrivateKey finds the private key for a file's encrypted values.
func resolvePrivateKey(f *dotenv.File, path, keysPath, override string) (string, error) {
	registry, err := LoadRegistry(path, keysPath, override)
	if err != nil {
		return "", err
	}
	return filePrivateKey(f, registry, override)
}

// headerEdit builds the insertion of the banner block and the
// DOTENV_PUBLIC_KEY entry at the top of the file, or immediately after an
// existing leading comment block.
func headerEdit(f *dotenv.File, publicKey string) dotenv.Edit {
	offset := 0
	for _, item := range f.Items {
		if item.Kind != dotenv.ItemComment {
			break
		}
		offset += len(item.Raw)
	}

	nl := f.LineEnding
	var text string
	for _, line := range strings.Split(publicKeyBanner, "\n") {
		text += line + nl
	}
	text += PublicKeyVar + `="` + publicKey + `"` + nl + nl
	return dotenv.Edit{Start: offset, End: offset, Text: text}
}

// eligibleForEncryption applies the include/exclude sets and skips the
// public key entry and values that are already sealed.
func eligibleForEncryption(entry *dotenv.Entry, include, exclude map[string]bool) bool {
	if entry.Key == PublicKeyVar {
		return false
	}
	if len(include) > 0 && !include[entry.Key] {
		return false
	}
	if exclude[entry.Key] {
		return false
	}
	return !ecies.IsEncrypted(entry.Value())
}

// emitValue renders a decrypted plaintext with the entry's quote style,
// falling back to double quotes when the plaintext needs them.
func emitValue(entry *dotenv.Entry, plaintext string) string {
	if dotenv.NeedsQuoting(plaintext) {
		return dotenv.Quote(plaintext)
	}
	switch entry.Quote {
	case dotenv.QuoteSingle:
		return "'" + plaintext + "'"
	case dotenv.QuoteDouble:
		return `"` + plaintext + `"`
	}
	return plaintext
}

// writeBack atomically replaces path, preserving its mode when known.
func writeBack(path, content string) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return utils.AtomicWriteFile(path, []byte(content), perm)
}

func toSet(keys []string) map[string]bool {
	if len(keys) == 0 {
		return nil
	}
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
