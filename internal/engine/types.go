package engine

// Stat is one of the fixed RPG stats a goal can train.
type Stat string

const (
	StatNone Stat = ""
	StatSTR  Stat = "STR"
	StatAGI  Stat = "AGI"
	StatINT  Stat = "INT"
	StatVIT  Stat = "VIT"
	StatPER  Stat = "PER"
)

// AllStats returns the stats in display order.
func AllStats() []Stat {
	return []Stat{StatSTR, StatAGI, StatINT, StatVIT, StatPER}
}

func (s Stat) IsValid() bool {
	switch s {
	case StatSTR, StatAGI, StatINT, StatVIT, StatPER:
		return true
	default:
		return false
	}
}

// Name is the long display name.
func (s Stat) Name() string {
	switch s {
	case StatSTR:
		return "Strength"
	case StatAGI:
		return "Agility"
	case StatINT:
		return "Intelligence"
	case StatVIT:
		return "Vitality"
	case StatPER:
		return "Perception"
	default:
		return "None"
	}
}
