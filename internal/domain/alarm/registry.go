package alarm

import (
	"errors"
	"iter"
	"time"
)

// ErrRegistryFull is returned by Append when the registry has reached its capacity.
var ErrRegistryFull = errors.New("alarm registry is full")

// Registry is the ordered, append-only collection of finished alarms.
// Insertion order is document order and records are never modified once stored.
type Registry struct {
	// alarms holds the records in insertion order.
	alarms []Alarm
	// limit caps the number of records; zero means unlimited.
	limit int
}

// NewRegistry creates an empty registry. A positive limit caps the number of
// records it accepts.
func NewRegistry(limit int) *Registry {
	if limit < 0 {
		limit = 0
	}

	return &Registry{limit: limit}
}

// Append stores a copy of the alarm at the tail.
func (r *Registry) Append(a Alarm) error {
	if r.limit > 0 && len(r.alarms) >= r.limit {
		return ErrRegistryFull
	}

	r.alarms = append(r.alarms, a)

	return nil
}

// Len returns the number of stored alarms.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.alarms)
}

// All yields every alarm in insertion order. The sequence can be ranged over
// any number of times and yields copies.
func (r *Registry) All() iter.Seq2[int, Alarm] {
	return func(yield func(int, Alarm) bool) {
		if r == nil {
			return
		}

		for i, a := range r.alarms {
			if !yield(i, a) {
				return
			}
		}
	}
}

// Slice returns a copy of the stored alarms.
func (r *Registry) Slice() []Alarm {
	if r == nil || len(r.alarms) == 0 {
		return nil
	}

	out := make([]Alarm, len(r.alarms))
	copy(out, r.alarms)

	return out
}

// Next returns the earliest firing strictly after now, looking up to a week
// ahead in now's location, together with the alarm that fires.
// It reports false when no alarm can fire.
func (r *Registry) Next(now time.Time) (time.Time, Alarm, bool) {
	var (
		best     time.Time
		bestItem Alarm
		found    bool
	)

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, a := range r.All() {
		if !a.Days.Any() {
			continue
		}

		for offset := 0; offset <= DaysPerWeek; offset++ {
			day := midnight.AddDate(0, 0, offset)
			if !a.FiresOn(day.Weekday()) {
				continue
			}

			at := day.AddDate(0, 0, a.TriggerTime/SecondsPerDay).
				Add(time.Duration(a.TriggerTime%SecondsPerDay) * time.Second)
			if !at.After(now) {
				continue
			}

			if !found || at.Before(best) {
				best, bestItem, found = at, a, true
			}

			break
		}
	}

	return best, bestItem, found
}
