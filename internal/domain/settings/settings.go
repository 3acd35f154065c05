package settings

import (
	"context"

	"github.com/oshokin/alarm-clock/internal/domain/value"
	"github.com/oshokin/alarm-clock/internal/logger"
)

const (
	// Unset is the sentinel of string settings that were never written.
	Unset = "<Unset>"
	// UnsetNumber is the sentinel of integer settings that were never written.
	UnsetNumber = -1

	// DefaultStringLimit bounds the title and the sound file name.
	DefaultStringLimit = 128
	// DefaultFileNameLimit bounds font file names.
	DefaultFileNameLimit = 256
)

// Settings is a snapshot of the top-level scalar settings.
type Settings struct {
	Title         string
	SoundFileName string
	ScreenWidth   int
	ScreenHeight  int
	DimDelay      int
	Bright        int
	Dim           int
}

// Defaults returns settings with every field at its sentinel.
func Defaults() Settings {
	return Settings{
		Title:         Unset,
		SoundFileName: Unset,
		ScreenWidth:   UnsetNumber,
		ScreenHeight:  UnsetNumber,
		DimDelay:      UnsetNumber,
		Bright:        UnsetNumber,
		Dim:           UnsetNumber,
	}
}

// Limits bounds the length of stored strings, in bytes.
type Limits struct {
	// String applies to the title and the sound file name.
	String int
	// FileName applies to font file names.
	FileName int
}

// DefaultLimits returns the built-in string bounds.
func DefaultLimits() Limits {
	return Limits{
		String:   DefaultStringLimit,
		FileName: DefaultFileNameLimit,
	}
}

// Store is the mutable settings record and font table filled by the parser.
// It is owned by a single parse and is not safe for concurrent use.
type Store struct {
	settings Settings
	fonts    Fonts
	limits   Limits
}

// NewStore creates a store with sentinel settings and default fonts.
// Non-positive limits fall back to the defaults.
func NewStore(limits Limits) *Store {
	if limits.String <= 0 {
		limits.String = DefaultStringLimit
	}

	if limits.FileName <= 0 {
		limits.FileName = DefaultFileNameLimit
	}

	return &Store{
		settings: Defaults(),
		fonts:    DefaultFonts(),
		limits:   limits,
	}
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() Settings {
	return s.settings
}

// Fonts returns a copy of the font table.
func (s *Store) Fonts() Fonts {
	return s.fonts
}

// Font returns the font record of one slot.
func (s *Store) Font(size FontSize) (Font, bool) {
	return s.fonts.Get(size)
}

// SetTitle stores the title, truncated to the string limit.
func (s *Store) SetTitle(ctx context.Context, text string) {
	s.settings.Title = boundedCopy(ctx, "Title", text, s.limits.String)
}

// SetSoundFileName stores the alarm sound file name, truncated to the string limit.
func (s *Store) SetSoundFileName(ctx context.Context, text string) {
	s.settings.SoundFileName = boundedCopy(ctx, "Sound file name", text, s.limits.String)
}

// SetScreenWidth stores the screen width.
func (s *Store) SetScreenWidth(text string) {
	s.settings.ScreenWidth = value.Integer(text)
}

// SetScreenHeight stores the screen height.
func (s *Store) SetScreenHeight(text string) {
	s.settings.ScreenHeight = value.Integer(text)
}

// SetDimDelay stores the idle delay before the screen dims.
func (s *Store) SetDimDelay(text string) {
	s.settings.DimDelay = value.Integer(text)
}

// SetBright stores the bright display level.
func (s *Store) SetBright(text string) {
	s.settings.Bright = value.Integer(text)
}

// SetDim stores the dimmed display level.
func (s *Store) SetDim(text string) {
	s.settings.Dim = value.Integer(text)
}

// SetFontFileName stores a font file name, truncated to the file name limit.
// Unknown slots are ignored.
func (s *Store) SetFontFileName(ctx context.Context, size FontSize, text string) {
	if !size.Valid() {
		return
	}

	s.fonts[size].FileName = boundedCopy(ctx, "Font file name", text, s.limits.FileName)
}

// SetFontSize stores a font point size. Unknown slots are ignored.
func (s *Store) SetFontSize(size FontSize, text string) {
	if !size.Valid() {
		return
	}

	s.fonts[size].Size = value.Integer(text)
}

// boundedCopy applies the length bound and warns when the text was cut.
func boundedCopy(ctx context.Context, setting, text string, limit int) string {
	bounded, truncated := value.Bounded(text, limit)
	if truncated {
		logger.WarnKV(ctx, "Setting truncated", "setting", setting, "limit", limit, "length", len(text))
	}

	return bounded
}
