package parser

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/domain/settings"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/tokenizer"
)

// pending holds what a key event announced until its value event arrives.
type pending struct {
	// setting is the setting key awaiting its value.
	setting Keyword
	// font is the slot whose mapping is open.
	font    settings.FontSize
	hasFont bool
	// attribute is the font detail awaiting its value.
	attribute Keyword
}

// Machine is the configuration state machine. It consumes one event per Step.
type Machine struct {
	result   *Context
	building alarm.Builder
	pending  pending
	state    State
	done     bool
	trace    bool
}

// NewMachine creates a machine in the initial state.
func NewMachine(opts Options) *Machine {
	m := &Machine{
		result:   NewContext(opts),
		building: alarm.NewBuilder(),
		state:    StateInitial,
		trace:    opts.Trace,
	}
	m.clearPending()

	return m
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Done reports whether the stream end has been accepted.
func (m *Machine) Done() bool {
	return m.done
}

// Result returns the context being filled. It is complete once Done is true.
func (m *Machine) Result() *Context {
	return m.result
}

// Step applies one event. An event with no transition from the current state
// yields a *StructuralError and leaves the machine unchanged.
func (m *Machine) Step(ctx context.Context, event tokenizer.Event) error {
	if m.done {
		return m.reject(ctx, event, "stream already ended")
	}

	act, ok := transitions[transition{from: m.state, kind: event.Kind}]
	if !ok {
		return m.reject(ctx, event, "")
	}

	next, err := act(ctx, m, event)
	if err != nil {
		return m.reject(ctx, event, err.Error())
	}

	if m.trace {
		logger.DebugKV(ctx, "Transition", "from", m.state.String(), "event", event.String(), "to", next.String())
	}

	m.state = next

	return nil
}

// reject logs and builds the structural error for the current state.
func (m *Machine) reject(ctx context.Context, event tokenizer.Event, reason string) error {
	logger.ErrorKV(ctx, "Unhandled parse event", "state", m.state.String(), "event", event.String(), "reason", reason)

	return &StructuralError{
		State:  m.state,
		Event:  event,
		Reason: reason,
	}
}

func (m *Machine) clearPending() {
	m.pending = pending{
		setting:   KeywordUnknown,
		attribute: KeywordUnknown,
	}
}

// Parse pulls events from src until the stream end is accepted. Each event is
// fully applied before the next one is pulled. On any failure no partial
// result is returned.
func Parse(ctx context.Context, src tokenizer.Source, opts Options) (*Context, error) {
	m := NewMachine(opts)

	for !m.Done() {
		event, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w (state %s)", ErrUnexpectedEnd, m.State())
		}

		if err != nil {
			return nil, fmt.Errorf("read event: %w", err)
		}

		if err = m.Step(ctx, event); err != nil {
			return nil, err
		}
	}

	return m.Result(), nil
}
