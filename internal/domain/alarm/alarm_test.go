package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestInterpretTime covers plain seconds, formatted times and malformed input.
func TestInterpretTime(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"90":       90,
		"3600":     3600,
		"01:02:03": 3723,
		"00:30":    1800,
		"07:00":    25200,
		"05:50":    21000,
		"23:59:59": 86399,
		"7:5:9":    25509,
		" 06:15":   22500,
		"abc":      0,
		"":         0,
		"25:00":    0,
		"xx:10":    0,
		"12:99":    43200,
		"12:30:ab": 45000,
		"-5":       UnsetTime,
		"-1":       UnsetTime,
	}
	for in, want := range cases {
		require.Equal(t, want, InterpretTime(in), "input %q", in)
	}
}

// TestIdentifyDay checks exact matching against the canonical names.
func TestIdentifyDay(t *testing.T) {
	t.Parallel()

	idx, ok := IdentifyDay("Wednesday")
	require.True(t, ok)
	require.Equal(t, 3, idx)

	idx, ok = IdentifyDay("Sunday")
	require.True(t, ok)
	require.Equal(t, 0, idx)

	for _, bad := range []string{"Frunday", "monday", "Mon", " Monday", ""} {
		_, ok = IdentifyDay(bad)
		require.False(t, ok, bad)
	}

	require.Equal(t, "Saturday", DayName(6))
	require.Empty(t, DayName(7))
}

// TestBuilder verifies the reset defaults and the switch to explicit days.
func TestBuilder(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	require.False(t, b.Ready())
	require.Equal(t, EveryDay(), b.Days)

	b.TriggerTime = 60
	b.ClearDays()
	b.EnableDay(1)
	b.EnableDay(1)
	b.EnableDay(5)
	b.EnableDay(9)

	a := b.Build()
	require.Equal(t, []string{"Monday", "Friday"}, a.Days.Names())
	require.Equal(t, "00:01:00", a.Clock())

	// The built record does not follow later builder changes.
	b.Reset()
	require.Equal(t, 60, a.TriggerTime)
	require.False(t, a.Days[0])
	require.Equal(t, UnsetTime, b.TriggerTime)
}

// TestRegistry checks ordering, copies, restartable iteration and the capacity limit.
func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry(2)
	require.NoError(t, r.Append(Alarm{TriggerTime: 10, Days: EveryDay()}))
	require.NoError(t, r.Append(Alarm{TriggerTime: 20}))
	require.ErrorIs(t, r.Append(Alarm{TriggerTime: 30}), ErrRegistryFull)
	require.Equal(t, 2, r.Len())

	for range 2 {
		var times []int
		for _, a := range r.All() {
			times = append(times, a.TriggerTime)
		}

		require.Equal(t, []int{10, 20}, times)
	}

	s := r.Slice()
	s[0].TriggerTime = 99
	require.Equal(t, 10, r.Slice()[0].TriggerTime)

	var empty *Registry
	require.Zero(t, empty.Len())
	require.Nil(t, empty.Slice())
}

// TestRegistryNext verifies the next firing honours times and weekdays.
func TestRegistryNext(t *testing.T) {
	t.Parallel()

	// 2024-01-03 is a Wednesday.
	now := time.Date(2024, time.January, 3, 8, 0, 0, 0, time.UTC)

	r := NewRegistry(0)

	_, _, ok := r.Next(now)
	require.False(t, ok)

	mondays := Days{}
	mondays[time.Monday] = true

	require.NoError(t, r.Append(Alarm{TriggerTime: 7 * 3600, Days: mondays}))
	require.NoError(t, r.Append(Alarm{TriggerTime: 7 * 3600, Days: EveryDay()}))
	require.NoError(t, r.Append(Alarm{TriggerTime: 9 * 3600}))

	at, a, ok := r.Next(now)
	require.True(t, ok)
	require.Equal(t, time.Date(2024, time.January, 4, 7, 0, 0, 0, time.UTC), at)
	require.Equal(t, EveryDay(), a.Days)

	only := NewRegistry(0)
	require.NoError(t, only.Append(Alarm{TriggerTime: 7 * 3600, Days: mondays}))

	at, _, ok = only.Next(now)
	require.True(t, ok)
	require.Equal(t, time.Date(2024, time.January, 8, 7, 0, 0, 0, time.UTC), at)

	// Same weekday, time already passed today: fires a week later.
	wednesdays := Days{}
	wednesdays[time.Wednesday] = true

	weekly := NewRegistry(0)
	require.NoError(t, weekly.Append(Alarm{TriggerTime: 6 * 3600, Days: wednesdays}))

	at, _, ok = weekly.Next(now)
	require.True(t, ok)
	require.Equal(t, time.Date(2024, time.January, 10, 6, 0, 0, 0, time.UTC), at)

	// Plain seconds far beyond a day are added as whole days plus a remainder.
	huge := NewRegistry(0)
	require.NoError(t, huge.Append(Alarm{TriggerTime: InterpretTime("99999999999"), Days: EveryDay()}))

	at, _, ok = huge.Next(now)
	require.True(t, ok)
	require.Equal(t, time.Date(2024, time.January, 3+1157407, 9, 46, 39, 0, time.UTC), at)
}
