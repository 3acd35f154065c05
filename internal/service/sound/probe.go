package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// ErrUnsupportedFormat is returned for file extensions without a decoder.
var ErrUnsupportedFormat = errors.New("unsupported sound format")

// Info describes a decoded sound file.
type Info struct {
	// Path is the probed file.
	Path string
	// Format is the container name derived from the extension.
	Format string
	// SampleRate is the number of samples per second.
	SampleRate int
	// Channels is the number of audio channels.
	Channels int
	// Duration is the playing time.
	Duration time.Duration
}

// decoders maps lower-case file extensions to beep decoders.
//
//nolint:gochecknoglobals // Read-only lookup table.
var decoders = map[string]func(f *os.File) (beep.StreamSeekCloser, beep.Format, error){
	".wav": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) },
	".mp3": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) },
	".ogg": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return vorbis.Decode(f) },
}

// Probe decodes the header of the sound file at path.
func Probe(path string) (*Info, error) {
	ext := strings.ToLower(filepath.Ext(path))

	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open sound file: %w", err)
	}

	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// Closing the streamer closes the file as well.
	defer func() {
		_ = streamer.Close()
	}()

	return &Info{
		Path:       path,
		Format:     strings.TrimPrefix(ext, "."),
		SampleRate: int(format.SampleRate),
		Channels:   format.NumChannels,
		Duration:   format.SampleRate.D(streamer.Len()),
	}, nil
}
