package engine

import (
	"math/rand"

	"goaltrack/internal/storage"
)

const (
	seedDays     = 365
	seedActivity = 0.7
	seedMaxCount = 10
)

// SeedDemo replaces the named goal with a year of random activity. It
// bypasses the progression rules.
func (s *Service) SeedDemo(name string, rng *rand.Rand) (*storage.Goal, error) {
	key, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	g := &storage.Goal{
		Name:    key,
		Created: DayKey(s.today),
		History: map[string]int{},
	}
	for i := 0; i < seedDays; i++ {
		if rng.Float64() < seedActivity {
			g.History[DayKey(s.today.AddDate(0, 0, -i))] = rng.Intn(seedMaxCount) + 1
		}
	}
	s.doc.Goals[key] = g
	return g, nil
}
