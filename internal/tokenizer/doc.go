// Package tokenizer turns a YAML stream into the flat sequence of structural
// events the configuration parser consumes: stream and document boundaries,
// mapping and sequence open/close, scalars and aliases.
//
// Events are produced lazily, one document at a time, from yaml.v3 node trees.
package tokenizer
