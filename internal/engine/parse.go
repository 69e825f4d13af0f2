package engine

import (
	"strconv"
	"strings"
	"time"
)

// ParseStat parses user input to a Stat. Empty input means no stat.
// Supported: str, agi, int, vit, per and their long names.
func ParseStat(input string) (Stat, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "", "none":
		return StatNone, nil
	case "str", "strength":
		return StatSTR, nil
	case "agi", "agility":
		return StatAGI, nil
	case "int", "intelligence":
		return StatINT, nil
	case "vit", "vitality":
		return StatVIT, nil
	case "per", "perception":
		return StatPER, nil
	default:
		return StatNone, InputError{Field: "stat", Value: input, Reason: "use one of STR, AGI, INT, VIT, PER"}
	}
}

// parseStoredStat reads a stat from the document, dropping unknown values.
func parseStoredStat(s string) Stat {
	st := Stat(strings.TrimSpace(strings.ToUpper(s)))
	if st.IsValid() {
		return st
	}
	return StatNone
}

// NormalizeName lower-cases and trims a goal name.
func NormalizeName(input string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(input))
	if name == "" {
		return "", InputError{Field: "name", Reason: "goal name is required"}
	}
	return name, nil
}

// Amount is a parsed log amount. Relative amounts ("+2", "-1") adjust the
// day's value; absolute ones ("5") replace it.
type Amount struct {
	Value    int
	Relative bool
}

func ParseAmount(input string) (Amount, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Amount{Value: 1, Relative: true}, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Amount{}, InputError{Field: "amount", Value: input, Reason: "use an integer such as 5, +1 or -2"}
	}
	return Amount{Value: v, Relative: strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-")}, nil
}

// Delta converts the amount into a net change against the current value.
func (a Amount) Delta(current int) int {
	if a.Relative {
		return a.Value
	}
	return a.Value - current
}

// ParseDate resolves a date argument relative to today. Empty input, "today"
// and "yesterday" are accepted besides YYYY-MM-DD.
func ParseDate(input string, today time.Time) (time.Time, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "", "today":
		return Day(today), nil
	case "yesterday":
		return Day(today).AddDate(0, 0, -1), nil
	}
	d, err := ParseDay(s)
	if err != nil {
		return time.Time{}, InputError{Field: "date", Value: input, Reason: "use YYYY-MM-DD"}
	}
	return d, nil
}
