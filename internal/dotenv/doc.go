// Package dotenv parses .env files while preserving their layout.
//
// # Parsing
//
// A file is an ordered sequence of line-items: blanks, comments, entries,
// and malformed lines kept verbatim. Entries retain the byte span of their
// value so callers can splice replacement bytes without reflowing the
// file; Parse followed by Source is byte-identical. Parse errors are
// collected as diagnostics, never raised — a bad line does not stop the
// rest of the file from parsing.
//
// # Quoting
//
// Single quotes are literal (backslash escapes only a closing quote).
// Double quotes honour \n, \r, \t, \\ and \", and may contain raw newlines
// until the matching close. Unquoted values end at a '#' preceded by
// whitespace and are trimmed of trailing whitespace.
//
// # Expansion
//
// Expand substitutes $(command), $VAR, ${VAR}, ${VAR:-default},
// ${VAR-default} and ${VAR:+alternate} in a single traversal. Defaults are
// themselves expanded. Command execution is injected by the caller, and
// failures substitute the empty string with a diagnostic. Values carrying
// the encrypted prefix are never passed to Expand; expansion applies only
// to plaintext.
package dotenv
