package storage

import "time"

// DateLayout is the calendar-date key format used throughout the document.
const DateLayout = "2006-01-02"

// Document is the whole persisted tracker state.
type Document struct {
	Goals   map[string]*Goal `json:"goals" yaml:"goals"`
	Profile Profile          `json:"profile" yaml:"profile"`
}

type Goal struct {
	// Name mirrors the map key; it is not serialized.
	Name     string         `json:"-" yaml:"-"`
	Created  string         `json:"created" yaml:"created"`
	History  map[string]int `json:"history" yaml:"history"`
	Archived bool           `json:"archived" yaml:"archived"`
	Unit     string         `json:"unit,omitempty" yaml:"unit,omitempty"`
	Stat     string         `json:"stat,omitempty" yaml:"stat,omitempty"`
}

type Profile struct {
	XP          int             `json:"xp" yaml:"xp"`
	Level       int             `json:"level" yaml:"level"`
	Badges      []string        `json:"badges" yaml:"badges"`
	Stats       map[string]int  `json:"stats" yaml:"stats"`
	DailyQuests map[string]bool `json:"daily_quests" yaml:"daily_quests"`
}

// StatCodes lists the RPG stats every profile carries.
var StatCodes = []string{"STR", "AGI", "INT", "VIT", "PER"}

const DefaultStatValue = 10

// NewDocument returns an empty document with a default profile.
func NewDocument() *Document {
	return &Document{
		Goals:   map[string]*Goal{},
		Profile: NewProfile(),
	}
}

func NewProfile() Profile {
	stats := make(map[string]int, len(StatCodes))
	for _, code := range StatCodes {
		stats[code] = DefaultStatValue
	}
	return Profile{
		Level:       1,
		Badges:      []string{},
		Stats:       stats,
		DailyQuests: map[string]bool{},
	}
}

// HasBadge reports whether id was already acquired.
func (p *Profile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// JournalEntry is one row of the SQLite event journal.
type JournalEntry struct {
	ID     string
	At     time.Time
	Day    string
	Goal   string
	Kind   string
	Amount int
	Detail string
}
