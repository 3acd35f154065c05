package sound

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/require"
)

// writeSilence encodes a short silent WAV file.
func writeSilence(t *testing.T, path string, rate beep.SampleRate, samples int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(samples), format))
	require.NoError(t, f.Close())
}

// TestProbe_WAV verifies format, rate, channels and duration of a generated file.
func TestProbe_WAV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Alarm.WAV")
	writeSilence(t, path, 44100, 4410)

	info, err := Probe(path)
	require.NoError(t, err)
	require.Equal(t, "wav", info.Format)
	require.Equal(t, 44100, info.SampleRate)
	require.Equal(t, 2, info.Channels)
	require.Equal(t, 100*time.Millisecond, info.Duration)
}

// TestProbe_Errors covers unknown extensions, missing files and undecodable content.
func TestProbe_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Probe(filepath.Join(dir, "alarm.flac"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Probe(filepath.Join(dir, "missing.ogg"))
	require.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(dir, "junk.wav")
	require.NoError(t, os.WriteFile(junk, []byte("not a riff file"), 0o600))

	_, err = Probe(junk)
	require.Error(t, err)
}
