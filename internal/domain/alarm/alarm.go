package alarm

import (
	"fmt"
	"strings"
	"time"
)

// DaysPerWeek is the size of a weekday set.
const DaysPerWeek = 7

// UnsetTime marks a trigger time that has not been parsed yet.
const UnsetTime = -1

// SecondsPerDay is the number of seconds between two midnights.
const SecondsPerDay = 24 * 60 * 60

// Days is a weekday set indexed like time.Weekday: 0 is Sunday, 6 is Saturday.
type Days [DaysPerWeek]bool

//nolint:gochecknoglobals // Read-only lookup table.
var dayNames = [DaysPerWeek]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// EveryDay returns a set with all seven days enabled.
func EveryDay() Days {
	return Days{true, true, true, true, true, true, true}
}

// IdentifyDay returns the index of a canonical day name.
// The comparison is exact: no trimming and no case folding.
func IdentifyDay(text string) (int, bool) {
	for i, name := range dayNames {
		if text == name {
			return i, true
		}
	}

	return -1, false
}

// DayName returns the canonical name of the day with the given index.
func DayName(index int) string {
	if index < 0 || index >= DaysPerWeek {
		return ""
	}

	return dayNames[index]
}

// Names lists the enabled days in week order.
func (d Days) Names() []string {
	names := make([]string, 0, DaysPerWeek)

	for i, on := range d {
		if on {
			names = append(names, dayNames[i])
		}
	}

	return names
}

// Any reports whether at least one day is enabled.
func (d Days) Any() bool {
	for _, on := range d {
		if on {
			return true
		}
	}

	return false
}

// Alarm is a finished alarm schedule. It is a value type: copies never share state.
type Alarm struct {
	// TriggerTime is the firing instant in seconds since midnight.
	TriggerTime int
	// Days holds the weekdays on which the alarm fires.
	Days Days
}

// FiresOn reports whether the alarm is active on the given weekday.
func (a Alarm) FiresOn(day time.Weekday) bool {
	return a.Days[day]
}

// Clock renders the trigger time as HH:MM:SS.
func (a Alarm) Clock() string {
	t := a.TriggerTime

	return fmt.Sprintf("%02d:%02d:%02d", t/3600, (t/60)%60, t%60)
}

// String describes the alarm for diagnostics.
func (a Alarm) String() string {
	return fmt.Sprintf("%s (%d) %s", a.Clock(), a.TriggerTime, strings.Join(a.Days.Names(), ", "))
}

// Builder accumulates the fields of the alarm currently being parsed.
type Builder struct {
	// TriggerTime is UnsetTime until a time has been interpreted.
	TriggerTime int
	// Days defaults to every day until a days list is seen.
	Days Days
}

// NewBuilder returns a builder in its reset state.
func NewBuilder() Builder {
	var b Builder

	b.Reset()

	return b
}

// Reset restores the defaults: no trigger time, every day.
func (b *Builder) Reset() {
	b.TriggerTime = UnsetTime
	b.Days = EveryDay()
}

// ClearDays disables every day. An explicit days list then enables exactly
// the days it names.
func (b *Builder) ClearDays() {
	b.Days = Days{}
}

// EnableDay turns on the day with the given index. Out of range indexes are ignored.
func (b *Builder) EnableDay(index int) {
	if index < 0 || index >= DaysPerWeek {
		return
	}

	b.Days[index] = true
}

// Ready reports whether the builder holds a usable trigger time.
func (b *Builder) Ready() bool {
	return b.TriggerTime >= 0
}

// Build copies the accumulated fields into a finished Alarm.
func (b *Builder) Build() Alarm {
	return Alarm{
		TriggerTime: b.TriggerTime,
		Days:        b.Days,
	}
}
