// Package utils provides small filesystem helpers shared across manuka.
//
// The atomic write helper backs every file rewrite in the tool: an
// interrupted encrypt or decrypt either completes or leaves the original
// file intact, never a torn mix of the two.
package utils
