package tokenizer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrSyntax is returned when the underlying YAML cannot be decoded.
var ErrSyntax = errors.New("yaml syntax error")

// Tokenizer produces events from a YAML stream.
type Tokenizer struct {
	// decoder reads documents one at a time.
	decoder *yaml.Decoder
	// closer releases the underlying file, if any.
	closer io.Closer
	// queue holds events of the current document not yet delivered.
	queue []Event

	started bool
	ended   bool
}

// New creates a tokenizer reading from r. Closing the tokenizer does not close r.
func New(r io.Reader) *Tokenizer {
	return &Tokenizer{
		decoder: yaml.NewDecoder(r),
	}
}

// Open creates a tokenizer over the file at path. The caller must Close it.
func Open(path string) (*Tokenizer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	t := New(f)
	t.closer = f

	return t, nil
}

// Close releases the file opened by Open. It is safe to call more than once.
func (t *Tokenizer) Close() error {
	if t == nil || t.closer == nil {
		return nil
	}

	err := t.closer.Close()
	t.closer = nil

	return err
}

// Next returns the next event in the stream.
func (t *Tokenizer) Next() (Event, error) {
	if !t.started {
		t.started = true

		return Event{Kind: StreamStart}, nil
	}

	for len(t.queue) == 0 {
		if t.ended {
			return Event{}, io.EOF
		}

		var document yaml.Node

		err := t.decoder.Decode(&document)
		if errors.Is(err, io.EOF) {
			t.ended = true

			return Event{Kind: StreamEnd}, nil
		}

		if err != nil {
			t.ended = true

			return Event{}, fmt.Errorf("%w: %w", ErrSyntax, err)
		}

		t.queue = appendNode(t.queue, &document)
	}

	e := t.queue[0]
	t.queue = t.queue[1:]

	return e, nil
}

// appendNode flattens a node tree into events, depth first.
func appendNode(events []Event, node *yaml.Node) []Event {
	at := func(kind Kind, value string) Event {
		return Event{Kind: kind, Value: value, Line: node.Line, Column: node.Column}
	}

	switch node.Kind {
	case yaml.DocumentNode:
		events = append(events, at(DocumentStart, ""))
		for _, child := range node.Content {
			events = appendNode(events, child)
		}

		events = append(events, at(DocumentEnd, ""))
	case yaml.MappingNode:
		events = append(events, at(MappingStart, ""))
		for _, child := range node.Content {
			events = appendNode(events, child)
		}

		events = append(events, at(MappingEnd, ""))
	case yaml.SequenceNode:
		events = append(events, at(SequenceStart, ""))
		for _, child := range node.Content {
			events = appendNode(events, child)
		}

		events = append(events, at(SequenceEnd, ""))
	case yaml.ScalarNode:
		events = append(events, at(Scalar, node.Value))
	case yaml.AliasNode:
		events = append(events, at(Alias, node.Value))
	}

	return events
}
