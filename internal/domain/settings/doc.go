// Package settings holds the top-level clock settings and the font table.
//
// Every field starts at a sentinel (Unset for strings, UnsetNumber for
// integers) so callers can tell a value that was never configured from one
// that was parsed. Fonts start at built-in defaults instead.
package settings
