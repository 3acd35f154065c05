package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-clock/internal/domain/settings"
)

// BackupSuffix is appended to an existing clock document before it is replaced.
const BackupSuffix = ".org"

// Document mirrors the clock document layout for writing. Keys carry the
// leading sigil the parser expects.
type Document struct {
	Settings DocumentSettings `yaml:":settings"`
	Alarms   []DocumentAlarm  `yaml:":alarms"`
}

// DocumentSettings is the settings section.
type DocumentSettings struct {
	Title          string        `yaml:":title"`
	ScreenWidth    int           `yaml:":screen_width"`
	ScreenHeight   int           `yaml:":screen_height"`
	AlarmSoundFile string        `yaml:":alarm_sound_file"`
	DimDelay       int           `yaml:":dim_delay"`
	Bright         int           `yaml:":bright"`
	Dim            int           `yaml:":dim"`
	Fonts          DocumentFonts `yaml:":fonts"`
}

// DocumentFonts is the fonts section.
type DocumentFonts struct {
	Large  DocumentFont `yaml:":large"`
	Medium DocumentFont `yaml:":medium"`
	Small  DocumentFont `yaml:":small"`
}

// DocumentFont is one font entry.
type DocumentFont struct {
	File string `yaml:":file"`
	Size int    `yaml:":size"`
}

// DocumentAlarm is one alarm entry.
type DocumentAlarm struct {
	Time string   `yaml:":time"`
	Days []string `yaml:":days,flow,omitempty"`
}

// DefaultDocument returns the document the clock ships with.
func DefaultDocument() *Document {
	fonts := settings.DefaultFonts()
	font := func(size settings.FontSize) DocumentFont {
		return DocumentFont{File: fonts[size].FileName, Size: fonts[size].Size}
	}

	return &Document{
		Settings: DocumentSettings{
			Title:          "Alarm clock",
			ScreenWidth:    1024,
			ScreenHeight:   600,
			AlarmSoundFile: "Alarm_Classic.ogg",
			DimDelay:       60,
			Bright:         200,
			Dim:            30,
			Fonts: DocumentFonts{
				Large:  font(settings.Large),
				Medium: font(settings.Medium),
				Small:  font(settings.Small),
			},
		},
		Alarms: []DocumentAlarm{
			{Time: "05:50", Days: []string{"Monday"}},
			{Time: "06:00", Days: []string{"Monday", "Tuesday"}},
		},
	}
}

// WriteDefault writes the default document to path. An existing file is
// renamed to path+BackupSuffix first, replacing any earlier backup.
func WriteDefault(path string) error {
	if path == "" {
		path = DefaultConfigFilename
	}

	path = filepath.Clean(path)

	data, err := yaml.Marshal(DefaultDocument())
	if err != nil {
		return fmt.Errorf("marshal default document: %w", err)
	}

	if err = backup(path); err != nil {
		return err
	}

	if err = os.WriteFile(path, append([]byte("---\n"), data...), DefaultFilePermissions); err != nil {
		return fmt.Errorf("write default document: %w", err)
	}

	return nil
}

func backup(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	saved := path + BackupSuffix
	if err := os.Remove(saved); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove old backup: %w", err)
	}

	if err := os.Rename(path, saved); err != nil {
		return fmt.Errorf("back up %s: %w", path, err)
	}

	return nil
}
