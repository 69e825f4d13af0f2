package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// legacyProfileKey is where the flat layout kept the profile.
const legacyProfileKey = "_user"

// FormatForPath picks the codec from the file extension. Anything that is not
// .yaml/.yml is JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DefaultDocumentPath returns the tracker file location shared with earlier
// releases of the tool.
func DefaultDocumentPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".goal_tracker.json"), nil
}

// FileStore loads and saves the whole Document as one text file.
type FileStore struct {
	path   string
	format Format
	log    *zap.Logger
}

func NewFileStore(path string, log *zap.Logger) *FileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileStore{path: path, format: FormatForPath(path), log: log}
}

func (s *FileStore) Path() string   { return s.path }
func (s *FileStore) Format() Format { return s.format }

// Load reads the document and backfills missing fields. A missing file yields
// a fresh document. An unreadable or unparseable file is logged and also
// yields a fresh document; it is never fatal.
func (s *FileStore) Load(today time.Time) *Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("store unreadable, starting empty", zap.String("path", s.path), zap.Error(err))
		}
		return Backfill(NewDocument(), today)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Backfill(NewDocument(), today)
	}

	doc, err := Decode(data, s.format)
	if err != nil {
		s.log.Warn("store malformed, starting empty", zap.String("path", s.path), zap.Error(err))
		return Backfill(NewDocument(), today)
	}
	s.log.Debug("store loaded", zap.String("path", s.path), zap.Int("goals", len(doc.Goals)))
	return Backfill(doc, today)
}

// Save writes the document atomically: a temp file in the same directory is
// renamed over the target.
func (s *FileStore) Save(doc *Document) error {
	data, err := Encode(doc, s.format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	s.log.Debug("store saved", zap.String("path", s.path), zap.Int("bytes", len(data)))
	return nil
}

// Encode serializes doc in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	}
}

// Decode parses data in the given format. JSON input in the legacy flat
// layout (goal names at top level, profile under "_user") is accepted.
func Decode(data []byte, format Format) (*Document, error) {
	if format == FormatYAML {
		var doc Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return &doc, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if isLegacyLayout(top) {
		return decodeLegacy(top)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &doc, nil
}

func isLegacyLayout(top map[string]json.RawMessage) bool {
	for key, raw := range top {
		switch key {
		case "goals", "profile":
			// A goal that happens to be called "goals" or "profile".
			if looksLikeGoal(raw) {
				return true
			}
		default:
			return true
		}
	}
	return false
}

// looksLikeGoal reports whether raw is a legacy goal record: an object whose
// "history" maps dates to integers. A new-layout "goals" object that holds a
// goal named "history" fails this, since its values are goal objects.
func looksLikeGoal(raw json.RawMessage) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false
	}
	hist, ok := fields["history"]
	if !ok {
		return false
	}
	hist = bytes.TrimSpace(hist)
	if len(hist) == 0 || hist[0] != '{' {
		return false
	}
	var counts map[string]int
	return json.Unmarshal(hist, &counts) == nil
}

// decodeLegacy reads the flat layout. Keys differing only in case are merged
// in sorted key order so the result does not depend on map iteration.
func decodeLegacy(top map[string]json.RawMessage) (*Document, error) {
	doc := &Document{Goals: map[string]*Goal{}}
	keys := make([]string, 0, len(top))
	for key := range top {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := top[key]
		if key == legacyProfileKey {
			if err := json.Unmarshal(raw, &doc.Profile); err != nil {
				return nil, fmt.Errorf("decode legacy profile: %w", err)
			}
			continue
		}
		if strings.HasPrefix(key, "_") {
			continue
		}
		var g Goal
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, fmt.Errorf("decode legacy goal %q: %w", key, err)
		}
		name := strings.ToLower(key)
		if prev, ok := doc.Goals[name]; ok {
			mergeGoal(prev, &g)
			continue
		}
		doc.Goals[name] = &g
	}
	return doc, nil
}

// mergeGoal folds src into dst: histories are summed per day, the earliest
// created date wins, and the goal stays active if either copy was.
func mergeGoal(dst, src *Goal) {
	if dst.History == nil {
		dst.History = map[string]int{}
	}
	for day, v := range src.History {
		dst.History[day] += v
	}
	if dst.Created == "" || (src.Created != "" && src.Created < dst.Created) {
		dst.Created = src.Created
	}
	dst.Archived = dst.Archived && src.Archived
	if dst.Unit == "" {
		dst.Unit = src.Unit
	}
	if dst.Stat == "" {
		dst.Stat = src.Stat
	}
}

// Backfill defaults every missing field so the engine can rely on a
// well-formed document. It mutates and returns doc.
func Backfill(doc *Document, today time.Time) *Document {
	if doc.Goals == nil {
		doc.Goals = map[string]*Goal{}
	}
	for name, g := range doc.Goals {
		if g == nil {
			delete(doc.Goals, name)
			continue
		}
		g.Name = name
		if g.History == nil {
			g.History = map[string]int{}
		}
		if g.Created == "" {
			g.Created = earliestDate(g.History, today)
		}
	}

	p := &doc.Profile
	if p.Level < 1 {
		p.Level = 1
	}
	if p.XP < 0 {
		p.XP = 0
	}
	if p.Badges == nil {
		p.Badges = []string{}
	}
	if p.Stats == nil {
		p.Stats = map[string]int{}
	}
	for _, code := range StatCodes {
		if _, ok := p.Stats[code]; !ok {
			p.Stats[code] = DefaultStatValue
		}
	}
	if p.DailyQuests == nil {
		p.DailyQuests = map[string]bool{}
	}
	return doc
}

func earliestDate(history map[string]int, today time.Time) string {
	var dates []string
	for key := range history {
		if _, err := time.Parse(DateLayout, key); err == nil {
			dates = append(dates, key)
		}
	}
	if len(dates) == 0 {
		return today.Format(DateLayout)
	}
	sort.Strings(dates)
	return dates[0]
}
