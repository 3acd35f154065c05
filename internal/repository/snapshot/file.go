package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/domain/settings"
	"github.com/oshokin/alarm-clock/internal/parser"
)

// Store is a Repository holding resources that must be released.
type Store interface {
	Repository
	Close() error
}

// JSONExtension selects the file backend in OpenStore.
const JSONExtension = ".json"

// filePermissions is the mode of the snapshot file.
const filePermissions = 0o600

// errMalformed is returned when the snapshot file has unexpected fields.
var errMalformed = errors.New("malformed snapshot file")

// OpenStore opens a FileRepository for paths ending in .json and a SQLite
// database otherwise.
func OpenStore(ctx context.Context, path string) (Store, error) {
	if strings.EqualFold(filepath.Ext(path), JSONExtension) {
		return NewFileRepository(path), nil
	}

	return Open(ctx, path)
}

// FileRepository keeps only the latest snapshot in a JSON file on disk.
// JSON is produced and consumed via protojson over structpb values.
type FileRepository struct {
	// path is the filesystem location of the JSON file.
	path string
	// mu protects concurrent access to the file.
	mu sync.Mutex
	// now returns the creation timestamp.
	now func() time.Time
}

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
		now:  time.Now,
	}
}

// Close is a no-op: the file is opened per call.
func (r *FileRepository) Close() error {
	return nil
}

// Save replaces the file contents with the snapshot.
func (r *FileRepository) Save(_ context.Context, source string, snap *parser.Snapshot) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := &Record{
		ID:        uuid.NewString(),
		Source:    source,
		CreatedAt: r.now().UTC(),
		Snapshot:  snap,
	}

	doc, err := structpb.NewStruct(toMap(record))
	if err != nil {
		return nil, fmt.Errorf("build snapshot: %w", err)
	}

	marshalOptions := protojson.MarshalOptions{
		Multiline:       true,
		EmitUnpopulated: true,
	}

	data, err := marshalOptions.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(r.path), 0o750); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}

	if err = os.WriteFile(r.path, data, filePermissions); err != nil {
		return nil, fmt.Errorf("write snapshot file: %w", err)
	}

	return record, nil
}

// Latest reads the snapshot back from disk.
func (r *FileRepository) Latest(_ context.Context) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var doc structpb.Struct
	if err = protojson.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot file: %w", err)
	}

	return fromStruct(&doc)
}

func toMap(record *Record) map[string]any {
	s := record.Snapshot.Settings

	fonts := make([]any, 0, settings.NumFonts)
	for _, size := range settings.FontSizes() {
		f := record.Snapshot.Fonts[size]
		fonts = append(fonts, map[string]any{"file": validText(f.FileName), "size": number(f.Size)})
	}

	alarms := make([]any, 0, len(record.Snapshot.Alarms))
	for _, a := range record.Snapshot.Alarms {
		alarms = append(alarms, map[string]any{
			"trigger_time": number(a.TriggerTime),
			"days":         number(encodeDays(a.Days)),
		})
	}

	return map[string]any{
		"id":         record.ID,
		"source":     validText(record.Source),
		"created_at": record.CreatedAt.Format(time.RFC3339Nano),
		"settings": map[string]any{
			"title":         validText(s.Title),
			"sound_file":    validText(s.SoundFileName),
			"screen_width":  number(s.ScreenWidth),
			"screen_height": number(s.ScreenHeight),
			"dim_delay":     number(s.DimDelay),
			"bright":        number(s.Bright),
			"dim":           number(s.Dim),
		},
		"fonts":  fonts,
		"alarms": alarms,
	}
}

func fromStruct(doc *structpb.Struct) (*Record, error) {
	fields := doc.GetFields()

	created, err := time.Parse(time.RFC3339Nano, fields["created_at"].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("%w: created_at: %w", errMalformed, err)
	}

	var (
		d    decoder
		snap = &parser.Snapshot{Fonts: settings.DefaultFonts()}
		s    = fields["settings"].GetStructValue().GetFields()
	)

	snap.Settings = settings.Settings{
		Title:         s["title"].GetStringValue(),
		SoundFileName: s["sound_file"].GetStringValue(),
		ScreenWidth:   d.integer(s, "screen_width"),
		ScreenHeight:  d.integer(s, "screen_height"),
		DimDelay:      d.integer(s, "dim_delay"),
		Bright:        d.integer(s, "bright"),
		Dim:           d.integer(s, "dim"),
	}

	fonts := fields["fonts"].GetListValue().GetValues()
	if len(fonts) != settings.NumFonts {
		return nil, fmt.Errorf("%w: %d fonts", errMalformed, len(fonts))
	}

	for i, v := range fonts {
		f := v.GetStructValue().GetFields()
		snap.Fonts[i] = settings.Font{
			FileName: f["file"].GetStringValue(),
			Size:     d.integer(f, "size"),
		}
	}

	for _, v := range fields["alarms"].GetListValue().GetValues() {
		a := v.GetStructValue().GetFields()
		snap.Alarms = append(snap.Alarms, alarm.Alarm{
			TriggerTime: d.integer(a, "trigger_time"),
			Days:        decodeDays(d.integer(a, "days")),
		})
	}

	if d.err != nil {
		return nil, d.err
	}

	return &Record{
		ID:        fields["id"].GetStringValue(),
		Source:    fields["source"].GetStringValue(),
		CreatedAt: created,
		Snapshot:  snap,
	}, nil
}

// number encodes an integer as a decimal string: structpb numbers are
// float64 and lose precision above 2^53.
func number(n int) string {
	return strconv.Itoa(n)
}

// validText replaces bytes that are not valid UTF-8, which structpb rejects.
func validText(s string) string {
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

// decoder reads decimal string fields and keeps the first failure.
type decoder struct {
	err error
}

func (d *decoder) integer(fields map[string]*structpb.Value, key string) int {
	if d.err != nil {
		return 0
	}

	n, err := strconv.Atoi(fields[key].GetStringValue())
	if err != nil {
		d.err = fmt.Errorf("%w: %s: %w", errMalformed, key, err)
	}

	return n
}
