package snapshot

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/domain/settings"
	"github.com/oshokin/alarm-clock/internal/parser"
)

func openRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "clock.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, repo.Close())
	})

	return repo
}

// TestSQLiteRepository_NotFound verifies Latest returns ErrNotFound on an empty database.
func TestSQLiteRepository_NotFound(t *testing.T) {
	t.Parallel()

	rec, err := openRepository(t).Latest(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, rec)
}

// TestSQLiteRepository_SaveLatest ensures a stored snapshot reads back unchanged and the newest wins.
func TestSQLiteRepository_SaveLatest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openRepository(t)

	clock := time.Date(2024, time.May, 1, 6, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }

	weekdays := alarm.Days{false, true, true, true, true, true, false}
	fonts := settings.DefaultFonts()
	fonts[settings.Small] = settings.Font{FileName: "/fonts/Small.ttf", Size: 12}

	first := &parser.Snapshot{Settings: settings.Defaults(), Fonts: settings.DefaultFonts()}
	_, err := repo.Save(ctx, "old.yaml", first)
	require.NoError(t, err)

	clock = clock.Add(time.Minute)

	want := &parser.Snapshot{
		Settings: settings.Settings{
			Title:         "Alarm clock",
			SoundFileName: "Alarm_Classic.ogg",
			ScreenWidth:   1024,
			ScreenHeight:  600,
			DimDelay:      60,
			Bright:        200,
			Dim:           30,
		},
		Fonts: fonts,
		Alarms: []alarm.Alarm{
			{TriggerTime: 25200, Days: weekdays},
			{TriggerTime: 3600, Days: alarm.EveryDay()},
			{TriggerTime: 60},
		},
	}

	saved, err := repo.Save(ctx, "config.yaml", want)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)
	require.Equal(t, "config.yaml", got.Source)
	require.Equal(t, clock, got.CreatedAt)
	require.Equal(t, want, got.Snapshot)
}

// TestDaysMask checks the weekday bit mask in both directions.
func TestDaysMask(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0x7f, encodeDays(alarm.EveryDay()))
	require.Equal(t, 0, encodeDays(alarm.Days{}))
	require.Equal(t, 0b100010, encodeDays(alarm.Days{false, true, false, false, false, true, false}))
	require.Equal(t, alarm.EveryDay(), decodeDays(0x7f))
}
