// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a console encoder writing to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - key-value helpers per level (DebugKV, InfoKV, WarnKV, ErrorKV).
//
// The parser and services accept a context and extract the logger from it,
// so tests can swap in an observed core and assert on emitted warnings.
package logger
