// Package envfile rewrites and loads dotenv files with per-value
// encryption.
//
// # Rewriting
//
// EncryptFile and DecryptFile transform selected values in place while
// preserving the file's layout: comments, blank lines, ordering, spacing
// and the quote styles of entries that are not rewritten survive
// untouched, because replacements are spliced into the parser's recorded
// byte spans rather than re-emitted from a model. Encrypted values are
// written double-quoted. Writes are atomic (temp file, fsync, rename); a failed operation
// leaves the original file intact, and any per-entry crypto failure
// aborts before anything is written.
//
// # Keys
//
// Each file encrypts against the public key in its own DOTENV_PUBLIC_KEY
// entry. Private keys are resolved through a per-operation Registry built
// from the sibling .env.keys file, the DOTENV_PRIVATE_KEY[_SUFFIX]
// environment variables, and an optional explicit override — looked up by
// the file's public key, so one keys file can serve many environments.
//
// # Loading
//
// Load resolves a list of files into a name-to-value map for a child
// process: encrypted values are decrypted and taken literally, plaintext
// values are expanded against earlier bindings and the process
// environment. Later files win, and within a file later entries win.
package envfile
