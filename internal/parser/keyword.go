package parser

import (
	"fmt"

	"github.com/oshokin/alarm-clock/internal/domain/settings"
)

// Keyword is a known configuration key.
type Keyword int

// Known keywords, in table order. Unknown marks text that matched nothing.
const (
	KeywordSettings Keyword = iota
	KeywordTitle
	KeywordScreenWidth
	KeywordScreenHeight
	KeywordAlarmSoundFile
	KeywordDimDelay
	KeywordBright
	KeywordDim
	KeywordFonts
	KeywordLarge
	KeywordMedium
	KeywordSmall
	KeywordFile
	KeywordSize
	KeywordAlarms
	KeywordTime
	KeywordDays
	KeywordUnknown
)

// KeySigil prefixes every key in the document.
const KeySigil = ":"

//nolint:gochecknoglobals // Read-only lookup table.
var keywordTexts = [KeywordUnknown]string{
	KeywordSettings:       ":settings",
	KeywordTitle:          ":title",
	KeywordScreenWidth:    ":screen_width",
	KeywordScreenHeight:   ":screen_height",
	KeywordAlarmSoundFile: ":alarm_sound_file",
	KeywordDimDelay:       ":dim_delay",
	KeywordBright:         ":bright",
	KeywordDim:            ":dim",
	KeywordFonts:          ":fonts",
	KeywordLarge:          ":large",
	KeywordMedium:         ":medium",
	KeywordSmall:          ":small",
	KeywordFile:           ":file",
	KeywordSize:           ":size",
	KeywordAlarms:         ":alarms",
	KeywordTime:           ":time",
	KeywordDays:           ":days",
}

// Classify maps key text to a Keyword. Matching is exact and case sensitive,
// sigil included; text matching no entry is KeywordUnknown.
func Classify(text string) Keyword {
	for k, candidate := range keywordTexts {
		if text == candidate {
			return Keyword(k)
		}
	}

	return KeywordUnknown
}

// Text returns the canonical key text, or "" for KeywordUnknown.
func (k Keyword) Text() string {
	if k < 0 || k >= KeywordUnknown {
		return ""
	}

	return keywordTexts[k]
}

// String returns the key name without its sigil.
func (k Keyword) String() string {
	if k == KeywordUnknown {
		return "unknown"
	}

	if k < 0 || k > KeywordUnknown {
		return fmt.Sprintf("keyword(%d)", int(k))
	}

	return keywordTexts[k][len(KeySigil):]
}

// IsSetting reports whether the keyword names a top-level scalar setting.
func (k Keyword) IsSetting() bool {
	switch k {
	case KeywordTitle, KeywordScreenWidth, KeywordScreenHeight, KeywordAlarmSoundFile,
		KeywordDimDelay, KeywordBright, KeywordDim:
		return true
	default:
		return false
	}
}

// FontSize maps a font size keyword to its slot.
func (k Keyword) FontSize() (settings.FontSize, bool) {
	switch k {
	case KeywordLarge:
		return settings.Large, true
	case KeywordMedium:
		return settings.Medium, true
	case KeywordSmall:
		return settings.Small, true
	default:
		return 0, false
	}
}

// IsFontAttribute reports whether the keyword names a font detail.
func (k Keyword) IsFontAttribute() bool {
	return k == KeywordFile || k == KeywordSize
}
