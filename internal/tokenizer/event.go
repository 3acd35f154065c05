package tokenizer

import (
	"fmt"
	"io"
)

// Kind is the type of a structural event.
type Kind int

// Event kinds in the order a well-formed stream produces them.
const (
	StreamStart Kind = iota
	StreamEnd
	DocumentStart
	DocumentEnd
	MappingStart
	MappingEnd
	SequenceStart
	SequenceEnd
	Scalar
	Alias
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [...]string{
	StreamStart:   "stream-start",
	StreamEnd:     "stream-end",
	DocumentStart: "document-start",
	DocumentEnd:   "document-end",
	MappingStart:  "mapping-start",
	MappingEnd:    "mapping-end",
	SequenceStart: "sequence-start",
	SequenceEnd:   "sequence-end",
	Scalar:        "scalar",
	Alias:         "alias",
}

// String returns the event kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// Event is one unit of the tokenizer output.
type Event struct {
	// Kind is the event type.
	Kind Kind
	// Value holds the scalar text, or the anchor name for aliases.
	Value string
	// Line and Column locate the event in the source (1-based, 0 when unknown).
	Line   int
	Column int
}

// String describes the event for diagnostics.
func (e Event) String() string {
	var s string

	switch e.Kind {
	case Scalar, Alias:
		s = fmt.Sprintf("%s %q", e.Kind, e.Value)
	default:
		s = e.Kind.String()
	}

	if e.Line > 0 {
		s = fmt.Sprintf("%s at line %d, column %d", s, e.Line, e.Column)
	}

	return s
}

// Source supplies events one at a time. Next returns io.EOF once the stream
// end event has been delivered.
type Source interface {
	Next() (Event, error)
}

// SliceSource replays a fixed list of events.
type SliceSource struct {
	events []Event
	pos    int
}

// NewSliceSource creates a source over the provided events.
func NewSliceSource(events ...Event) *SliceSource {
	return &SliceSource{events: events}
}

// Next returns the next queued event.
func (s *SliceSource) Next() (Event, error) {
	if s.pos >= len(s.events) {
		return Event{}, io.EOF
	}

	e := s.events[s.pos]
	s.pos++

	return e, nil
}
