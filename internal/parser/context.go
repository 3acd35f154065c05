package parser

import (
	"iter"
	"time"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/domain/settings"
)

// Options tunes a parse.
type Options struct {
	// Limits bounds stored strings; zero values use the defaults.
	Limits settings.Limits
	// AlarmLimit caps the number of alarms kept; zero means unlimited.
	AlarmLimit int
	// Trace logs every accepted transition at debug level.
	Trace bool
}

// Context is the outcome of a parse: the settings store, the font table and
// the alarm registry. After Parse returns it is only read.
type Context struct {
	store  *settings.Store
	alarms *alarm.Registry
}

// NewContext returns a context holding sentinel settings, default fonts and
// no alarms. It is also what callers fall back to when no file can be read.
func NewContext(opts Options) *Context {
	return &Context{
		store:  settings.NewStore(opts.Limits),
		alarms: alarm.NewRegistry(opts.AlarmLimit),
	}
}

// Settings returns a copy of the top-level settings.
func (c *Context) Settings() settings.Settings {
	return c.store.Settings()
}

// Font returns the font of one slot.
func (c *Context) Font(size settings.FontSize) (settings.Font, bool) {
	return c.store.Font(size)
}

// Fonts returns a copy of the font table.
func (c *Context) Fonts() settings.Fonts {
	return c.store.Fonts()
}

// Alarms yields the finished alarms in document order. The sequence is restartable.
func (c *Context) Alarms() iter.Seq2[int, alarm.Alarm] {
	return c.alarms.All()
}

// AlarmCount returns the number of finished alarms.
func (c *Context) AlarmCount() int {
	return c.alarms.Len()
}

// NextAlarm returns the next firing after now.
func (c *Context) NextAlarm(now time.Time) (time.Time, alarm.Alarm, bool) {
	return c.alarms.Next(now)
}

// Snapshot is an immutable copy of a parsed configuration.
type Snapshot struct {
	Settings settings.Settings
	Fonts    settings.Fonts
	Alarms   []alarm.Alarm
}

// Snapshot copies the current configuration.
func (c *Context) Snapshot() *Snapshot {
	return &Snapshot{
		Settings: c.store.Settings(),
		Fonts:    c.store.Fonts(),
		Alarms:   c.alarms.Slice(),
	}
}
