// Package snapshot persists parsed clock configurations.
//
// SQLiteRepository keeps every snapshot (settings, fonts and alarms) under a
// generated identifier. FileRepository keeps only the latest one as JSON.
// OpenStore picks between them by file extension.
package snapshot
