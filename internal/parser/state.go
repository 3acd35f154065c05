package parser

import "fmt"

// State is the position of the machine within the document.
type State int

// Parser states.
const (
	StateInitial State = iota
	StateStarted
	StateOuterMapping
	StateHadSettings
	StateInSettings
	StateHadSettingItem
	StateHadFonts
	StateInFonts
	StateHadFontSize
	StateInFont
	StateHadFontItem
	StateHadAlarms
	StateInAlarms
	StateInAlarm
	StateHadAlarmTime
	StateHadAlarmDays
	StateInAlarmDays
	StateFinished

	numStates
)

//nolint:gochecknoglobals // Read-only lookup table.
var stateNames = [numStates]string{
	StateInitial:        "initial",
	StateStarted:        "started",
	StateOuterMapping:   "outer_mapping",
	StateHadSettings:    "had_settings",
	StateInSettings:     "in_settings",
	StateHadSettingItem: "had_setting_item",
	StateHadFonts:       "had_fonts",
	StateInFonts:        "in_fonts",
	StateHadFontSize:    "had_font_size",
	StateInFont:         "in_font",
	StateHadFontItem:    "had_font_item",
	StateHadAlarms:      "had_alarms",
	StateInAlarms:       "in_alarms",
	StateInAlarm:        "in_alarm",
	StateHadAlarmTime:   "had_alarm_time",
	StateHadAlarmDays:   "had_alarm_days",
	StateInAlarmDays:    "in_alarm_days",
	StateFinished:       "finished",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || s >= numStates {
		return fmt.Sprintf("state(%d)", int(s))
	}

	return stateNames[s]
}
