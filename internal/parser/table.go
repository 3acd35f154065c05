package parser

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/tokenizer"
)

// transition is a (state, event kind) pair; it keys the transition table.
type transition struct {
	from State
	kind tokenizer.Kind
}

// action applies the side effects of a transition and returns the next state.
// An action that returns an error must not have changed anything.
type action func(ctx context.Context, m *Machine, event tokenizer.Event) (State, error)

// transitions is the complete table. Pairs missing from it are structural errors.
//
//nolint:gochecknoglobals // Read-only lookup table.
var transitions = map[transition]action{
	{StateInitial, tokenizer.StreamStart}:   to(StateInitial),
	{StateInitial, tokenizer.DocumentStart}: to(StateStarted),
	{StateStarted, tokenizer.MappingStart}:  to(StateOuterMapping),

	{StateOuterMapping, tokenizer.Scalar}:     outerKey,
	{StateOuterMapping, tokenizer.MappingEnd}: to(StateFinished),

	{StateHadSettings, tokenizer.MappingStart}: to(StateInSettings),
	{StateInSettings, tokenizer.Scalar}:        settingKey,
	{StateInSettings, tokenizer.MappingEnd}:    to(StateOuterMapping),
	{StateHadSettingItem, tokenizer.Scalar}:    settingValue,

	{StateHadFonts, tokenizer.MappingStart}:    to(StateInFonts),
	{StateInFonts, tokenizer.Scalar}:           fontSlot,
	{StateInFonts, tokenizer.MappingEnd}:       to(StateInSettings),
	{StateHadFontSize, tokenizer.MappingStart}: to(StateInFont),
	{StateInFont, tokenizer.Scalar}:            fontAttribute,
	{StateInFont, tokenizer.MappingEnd}:        closeFont,
	{StateHadFontItem, tokenizer.Scalar}:       fontValue,

	{StateHadAlarms, tokenizer.SequenceStart}: to(StateInAlarms),
	{StateInAlarms, tokenizer.MappingStart}:   openAlarm,
	{StateInAlarms, tokenizer.SequenceEnd}:    to(StateOuterMapping),
	{StateInAlarm, tokenizer.Scalar}:          alarmKey,
	{StateInAlarm, tokenizer.MappingEnd}:      closeAlarm,
	{StateHadAlarmTime, tokenizer.Scalar}:     alarmTime,

	{StateHadAlarmDays, tokenizer.SequenceStart}: to(StateInAlarmDays),
	{StateInAlarmDays, tokenizer.Scalar}:         alarmDay,
	{StateInAlarmDays, tokenizer.SequenceEnd}:    to(StateInAlarm),

	{StateFinished, tokenizer.DocumentEnd}: to(StateFinished),
	{StateFinished, tokenizer.StreamEnd}:   finish,
}

var (
	errUnexpectedKey   = errors.New("unexpected key")
	errNoPendingKey    = errors.New("no key awaiting a value")
	errUnsetAlarmTime  = errors.New("alarm time could not be interpreted")
	errAlarmTimeNeeded = errors.New("alarm has no time")
)

// to is an action without side effects.
func to(next State) action {
	return func(context.Context, *Machine, tokenizer.Event) (State, error) {
		return next, nil
	}
}

func unexpectedKey(event tokenizer.Event) error {
	return fmt.Errorf("%w %q", errUnexpectedKey, event.Value)
}

func outerKey(_ context.Context, _ *Machine, event tokenizer.Event) (State, error) {
	switch Classify(event.Value) {
	case KeywordSettings:
		return StateHadSettings, nil
	case KeywordAlarms:
		return StateHadAlarms, nil
	default:
		return 0, unexpectedKey(event)
	}
}

func settingKey(_ context.Context, m *Machine, event tokenizer.Event) (State, error) {
	keyword := Classify(event.Value)

	switch {
	case keyword.IsSetting():
		m.pending.setting = keyword

		return StateHadSettingItem, nil
	case keyword == KeywordFonts:
		return StateHadFonts, nil
	default:
		return 0, unexpectedKey(event)
	}
}

// settingValue stores the value under the remembered setting key.
func settingValue(ctx context.Context, m *Machine, event tokenizer.Event) (State, error) {
	store := m.result.store

	switch m.pending.setting {
	case KeywordTitle:
		store.SetTitle(ctx, event.Value)
	case KeywordAlarmSoundFile:
		store.SetSoundFileName(ctx, event.Value)
	case KeywordScreenWidth:
		store.SetScreenWidth(event.Value)
	case KeywordScreenHeight:
		store.SetScreenHeight(event.Value)
	case KeywordDimDelay:
		store.SetDimDelay(event.Value)
	case KeywordBright:
		store.SetBright(event.Value)
	case KeywordDim:
		store.SetDim(event.Value)
	default:
		return 0, errNoPendingKey
	}

	m.pending.setting = KeywordUnknown

	return StateInSettings, nil
}

func fontSlot(_ context.Context, m *Machine, event tokenizer.Event) (State, error) {
	size, ok := Classify(event.Value).FontSize()
	if !ok {
		return 0, unexpectedKey(event)
	}

	m.pending.font = size
	m.pending.hasFont = true

	return StateHadFontSize, nil
}

func fontAttribute(_ context.Context, m *Machine, event tokenizer.Event) (State, error) {
	keyword := Classify(event.Value)
	if !keyword.IsFontAttribute() {
		return 0, unexpectedKey(event)
	}

	m.pending.attribute = keyword

	return StateHadFontItem, nil
}

// fontValue writes into the remembered slot's file name or size.
func fontValue(ctx context.Context, m *Machine, event tokenizer.Event) (State, error) {
	if !m.pending.hasFont {
		return 0, errNoPendingKey
	}

	store := m.result.store

	switch m.pending.attribute {
	case KeywordFile:
		store.SetFontFileName(ctx, m.pending.font, event.Value)
	case KeywordSize:
		store.SetFontSize(m.pending.font, event.Value)
	default:
		return 0, errNoPendingKey
	}

	m.pending.attribute = KeywordUnknown

	return StateInFont, nil
}

func closeFont(_ context.Context, m *Machine, _ tokenizer.Event) (State, error) {
	m.pending.hasFont = false

	return StateInFonts, nil
}

func openAlarm(_ context.Context, m *Machine, _ tokenizer.Event) (State, error) {
	m.building.Reset()

	return StateInAlarm, nil
}

func alarmKey(_ context.Context, m *Machine, event tokenizer.Event) (State, error) {
	switch Classify(event.Value) {
	case KeywordTime:
		return StateHadAlarmTime, nil
	case KeywordDays:
		m.building.ClearDays()

		return StateHadAlarmDays, nil
	default:
		return 0, unexpectedKey(event)
	}
}

func alarmTime(_ context.Context, m *Machine, event tokenizer.Event) (State, error) {
	seconds := alarm.InterpretTime(event.Value)
	if seconds == alarm.UnsetTime {
		return 0, fmt.Errorf("%w: %q", errUnsetAlarmTime, event.Value)
	}

	m.building.TriggerTime = seconds

	return StateInAlarm, nil
}

func alarmDay(ctx context.Context, m *Machine, event tokenizer.Event) (State, error) {
	index, ok := alarm.IdentifyDay(event.Value)
	if !ok {
		logger.DebugKV(ctx, "Ignoring unknown day name", "day", event.Value)

		return StateInAlarmDays, nil
	}

	m.building.EnableDay(index)

	return StateInAlarmDays, nil
}

// closeAlarm appends the finished alarm to the registry. A full registry
// drops the alarm with an error log; the parse goes on.
func closeAlarm(ctx context.Context, m *Machine, _ tokenizer.Event) (State, error) {
	if !m.building.Ready() {
		return 0, errAlarmTimeNeeded
	}

	record := m.building.Build()
	if err := m.result.alarms.Append(record); err != nil {
		logger.ErrorKV(ctx, "Failed to store alarm", "alarm", record.String(), "error", err)
	} else {
		logger.DebugKV(ctx, "Added alarm", "alarm", record.String())
	}

	m.building.Reset()

	return StateInAlarms, nil
}

func finish(_ context.Context, m *Machine, _ tokenizer.Event) (State, error) {
	m.done = true
	m.clearPending()

	return StateFinished, nil
}
