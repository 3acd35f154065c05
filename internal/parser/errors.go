package parser

import (
	"errors"
	"fmt"

	"github.com/oshokin/alarm-clock/internal/tokenizer"
)

var (
	// ErrStructural matches every StructuralError via errors.Is.
	ErrStructural = errors.New("structural parse error")
	// ErrUnexpectedEnd is returned when the event source runs dry before the stream end.
	ErrUnexpectedEnd = errors.New("event stream ended before the document was complete")
)

// StructuralError reports an event that is not legal in the current state,
// or a value that could not be dispatched. It is never recovered from.
type StructuralError struct {
	// State is the machine state when the event arrived.
	State State
	// Event is the offending event.
	Event tokenizer.Event
	// Reason optionally narrows down why the event was refused.
	Reason string
}

// Error describes the failure with the state name and the event.
func (e *StructuralError) Error() string {
	msg := fmt.Sprintf("unexpected %s in state %s", e.Event, e.State)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

// Is makes errors.Is(err, ErrStructural) hold.
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural
}
