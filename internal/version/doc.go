// Package version exposes build metadata for alarm-clock.
//
// Version, Commit and BuildTime are injected with -ldflags -X at build time.
package version
