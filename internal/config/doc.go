// Package config defines the application settings of the alarm clock binary
// (where the clock document lives, where snapshots go, log level and string
// bounds) and loads them from an optional .env file and the environment.
//
// It also writes the built-in default clock document.
package config
