package engine

import (
	"sort"
	"time"

	"goaltrack/internal/storage"
)

// Service applies commands to a borrowed Document. All date logic uses the
// single "today" captured when the service was created.
type Service struct {
	doc   *storage.Document
	today time.Time
}

func NewService(doc *storage.Document, now time.Time) *Service {
	return &Service{doc: doc, today: Day(now)}
}

func (s *Service) Document() *storage.Document { return s.doc }
func (s *Service) Today() time.Time            { return s.today }

// Goal returns the named goal or a NotFoundError.
func (s *Service) Goal(name string) (*storage.Goal, error) {
	key, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}
	g, ok := s.doc.Goals[key]
	if !ok {
		return nil, NotFoundError{Goal: key}
	}
	return g, nil
}

type AddGoalInput struct {
	Name string
	Unit string
	Stat string
}

type AddGoalResult struct {
	Name     string
	Restored bool
}

// AddGoal registers a goal. Adding the name of an archived goal restores it
// with its history intact; adding an active one is a DuplicateNameError.
func (s *Service) AddGoal(in AddGoalInput) (*AddGoalResult, error) {
	name, err := NormalizeName(in.Name)
	if err != nil {
		return nil, err
	}
	stat, err := ParseStat(in.Stat)
	if err != nil {
		return nil, err
	}

	if g, ok := s.doc.Goals[name]; ok {
		if !g.Archived {
			return nil, DuplicateNameError{Goal: name}
		}
		g.Archived = false
		return &AddGoalResult{Name: name, Restored: true}, nil
	}

	s.doc.Goals[name] = &storage.Goal{
		Name:    name,
		Created: DayKey(s.today),
		History: map[string]int{},
		Unit:    in.Unit,
		Stat:    string(stat),
	}
	return &AddGoalResult{Name: name}, nil
}

type LogResult struct {
	Goal   string
	Date   string
	Value  int
	Delta  int
	Events []Event
}

// LogEvent applies delta to the goal's entry for date and runs the
// progression rules. It is the primary mutating entry point.
func (s *Service) LogEvent(name string, date time.Time, delta int) (*LogResult, error) {
	g, err := s.Goal(name)
	if err != nil {
		return nil, err
	}
	if g.History == nil {
		g.History = map[string]int{}
	}

	key := DayKey(date)
	value := g.History[key] + delta
	g.History[key] = value

	return &LogResult{
		Goal:   g.Name,
		Date:   key,
		Value:  value,
		Delta:  delta,
		Events: Reward(s.doc, g, Day(date), s.today, delta),
	}, nil
}

// LogAmount parses the amount and date arguments of the log command and
// forwards to LogEvent. Nothing is mutated when parsing fails.
func (s *Service) LogAmount(name, amount, date string) (*LogResult, error) {
	g, err := s.Goal(name)
	if err != nil {
		return nil, err
	}
	amt, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	day, err := ParseDate(date, s.today)
	if err != nil {
		return nil, err
	}
	return s.LogEvent(g.Name, day, amt.Delta(g.History[DayKey(day)]))
}

func (s *Service) ArchiveGoal(name string) error {
	g, err := s.Goal(name)
	if err != nil {
		return err
	}
	g.Archived = true
	return nil
}

// RestoreGoal un-archives a goal. It reports whether anything changed.
func (s *Service) RestoreGoal(name string) (bool, error) {
	g, err := s.Goal(name)
	if err != nil {
		return false, err
	}
	changed := g.Archived
	g.Archived = false
	return changed, nil
}

func (s *Service) DeleteGoal(name string) error {
	g, err := s.Goal(name)
	if err != nil {
		return err
	}
	delete(s.doc.Goals, g.Name)
	return nil
}

type EditGoalInput struct {
	Unit *string
	Stat *string
}

func (s *Service) EditGoal(name string, in EditGoalInput) error {
	g, err := s.Goal(name)
	if err != nil {
		return err
	}
	stat := parseStoredStat(g.Stat)
	if in.Stat != nil {
		if stat, err = ParseStat(*in.Stat); err != nil {
			return err
		}
	}
	if in.Unit != nil {
		g.Unit = *in.Unit
	}
	g.Stat = string(stat)
	return nil
}

// ListGoals returns goals sorted by name, archived ones only when asked.
func (s *Service) ListGoals(includeArchived bool) []*storage.Goal {
	out := make([]*storage.Goal, 0, len(s.doc.Goals))
	for _, g := range s.doc.Goals {
		if g.Archived && !includeArchived {
			continue
		}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Stats computes the statistics of one goal as of today.
func (s *Service) Stats(name string) (GoalStats, error) {
	g, err := s.Goal(name)
	if err != nil {
		return GoalStats{}, err
	}
	return ComputeGoalStats(g.History, s.today), nil
}
