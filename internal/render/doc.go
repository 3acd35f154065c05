// Package render formats a configuration snapshot for people and machines:
// a styled text dump and a JSON document.
package render
