// Package loader reads the clock document: it opens the file, runs the
// tokenizer through the parser, dumps the result for diagnostics and
// optionally stores a snapshot.
//
// A missing document is not fatal; Run degrades to sentinel settings.
package loader
