package engine

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"goaltrack/internal/storage"
)

// testToday is a Thursday.
var testToday = time.Date(2024, 1, 4, 15, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, goals ...string) *Service {
	t.Helper()
	svc := NewService(storage.NewDocument(), testToday)
	for _, name := range goals {
		if _, err := svc.AddGoal(AddGoalInput{Name: name}); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	return svc
}

func mustGoal(t *testing.T, svc *Service, name string) *storage.Goal {
	t.Helper()
	g, err := svc.Goal(name)
	if err != nil {
		t.Fatalf("goal %s: %v", name, err)
	}
	return g
}

func TestAddGoalNormalizesAndRejectsDuplicates(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.AddGoal(AddGoalInput{Name: "  Reading ", Unit: "pages", Stat: "int"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if res.Name != "reading" || res.Restored {
		t.Fatalf("res=%+v, want reading not restored", res)
	}
	g := mustGoal(t, svc, "READING")
	if g.Created != "2024-01-04" || g.Unit != "pages" || g.Stat != "INT" {
		t.Fatalf("goal=%+v", g)
	}

	_, err = svc.AddGoal(AddGoalInput{Name: "reading"})
	var dup DuplicateNameError
	if !errors.As(err, &dup) || dup.Goal != "reading" {
		t.Fatalf("err=%v, want DuplicateNameError", err)
	}

	if _, err := svc.AddGoal(AddGoalInput{Name: "   "}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := svc.AddGoal(AddGoalInput{Name: "x", Stat: "LUCK"}); err == nil {
		t.Fatalf("expected error for unknown stat")
	}
	if _, err := svc.Goal("x"); err == nil {
		t.Fatalf("rejected goal must not be created")
	}
}

func TestArchivedRestoreKeepsHistory(t *testing.T) {
	svc := newTestService(t, "run")
	if _, err := svc.LogAmount("run", "3", "2024-01-02"); err != nil {
		t.Fatalf("log: %v", err)
	}
	if err := svc.ArchiveGoal("run"); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if got := len(svc.ListGoals(false)); got != 0 {
		t.Fatalf("active goals=%d, want 0", got)
	}
	if got := len(svc.ListGoals(true)); got != 1 {
		t.Fatalf("all goals=%d, want 1", got)
	}

	res, err := svc.AddGoal(AddGoalInput{Name: "run"})
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if !res.Restored {
		t.Fatalf("expected restore")
	}
	g := mustGoal(t, svc, "run")
	if g.Archived || g.History["2024-01-02"] != 3 {
		t.Fatalf("goal=%+v, want active with history", g)
	}

	changed, err := svc.RestoreGoal("run")
	if err != nil || changed {
		t.Fatalf("restore active: changed=%v err=%v", changed, err)
	}
}

func TestLogAmountRelativeAndAbsolute(t *testing.T) {
	svc := newTestService(t, "read")

	steps := []struct {
		amount    string
		wantDelta int
		wantValue int
	}{
		{"", 1, 1},
		{"+4", 4, 5},
		{"-2", -2, 3},
		{"10", 7, 10},
		{"0", -10, 0},
	}
	for _, st := range steps {
		res, err := svc.LogAmount("read", st.amount, "")
		if err != nil {
			t.Fatalf("log %q: %v", st.amount, err)
		}
		if res.Delta != st.wantDelta || res.Value != st.wantValue || res.Date != "2024-01-04" {
			t.Fatalf("log %q: res=%+v, want delta %d value %d", st.amount, res, st.wantDelta, st.wantValue)
		}
	}
}

func TestLogAmountInvalidInputDoesNotMutate(t *testing.T) {
	svc := newTestService(t, "read")
	if _, err := svc.LogAmount("read", "2", ""); err != nil {
		t.Fatalf("log: %v", err)
	}
	before := svc.Document().Profile

	var inErr InputError
	if _, err := svc.LogAmount("read", "lots", ""); !errors.As(err, &inErr) || inErr.Field != "amount" {
		t.Fatalf("err=%v, want amount InputError", err)
	}
	if _, err := svc.LogAmount("read", "1", "2024-13-40"); !errors.As(err, &inErr) || inErr.Field != "date" {
		t.Fatalf("err=%v, want date InputError", err)
	}
	var nf NotFoundError
	if _, err := svc.LogAmount("nope", "1", ""); !errors.As(err, &nf) {
		t.Fatalf("err=%v, want NotFoundError", err)
	}

	g := mustGoal(t, svc, "read")
	if len(g.History) != 1 || g.History["2024-01-04"] != 2 {
		t.Fatalf("history=%v, want unchanged", g.History)
	}
	after := svc.Document().Profile
	if after.XP != before.XP || after.Level != before.Level {
		t.Fatalf("profile changed: before=%+v after=%+v", before, after)
	}
}

func TestParseDate(t *testing.T) {
	cases := map[string]string{
		"":           "2024-01-04",
		"today":      "2024-01-04",
		"Yesterday":  "2024-01-03",
		"2023-12-25": "2023-12-25",
		"2030-06-01": "2030-06-01",
	}
	for in, want := range cases {
		got, err := ParseDate(in, testToday)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", in, err)
		}
		if DayKey(got) != want {
			t.Fatalf("ParseDate(%q)=%s, want %s", in, DayKey(got), want)
		}
	}
	for _, bad := range []string{"tomorrow", "2024/01/04", "04-01-2024"} {
		if _, err := ParseDate(bad, testToday); err == nil {
			t.Fatalf("ParseDate(%q) expected error", bad)
		}
	}
}

func TestEditGoal(t *testing.T) {
	svc := newTestService(t, "swim")
	unit, stat := "laps", "vitality"
	if err := svc.EditGoal("swim", EditGoalInput{Unit: &unit, Stat: &stat}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	g := mustGoal(t, svc, "swim")
	if g.Unit != "laps" || g.Stat != "VIT" {
		t.Fatalf("goal=%+v", g)
	}

	bad := "charisma"
	if err := svc.EditGoal("swim", EditGoalInput{Stat: &bad}); err == nil {
		t.Fatalf("expected error for unknown stat")
	}
	if g.Stat != "VIT" {
		t.Fatalf("stat changed on error: %s", g.Stat)
	}

	none := "none"
	if err := svc.EditGoal("swim", EditGoalInput{Stat: &none}); err != nil {
		t.Fatalf("clear stat: %v", err)
	}
	if g.Stat != "" || g.Unit != "laps" {
		t.Fatalf("goal=%+v", g)
	}
}

func TestDeleteGoal(t *testing.T) {
	svc := newTestService(t, "a", "b")
	if err := svc.DeleteGoal("a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Goal("a"); err == nil {
		t.Fatalf("goal still present")
	}
	if err := svc.DeleteGoal("a"); err == nil {
		t.Fatalf("expected NotFoundError")
	}
	goals := svc.ListGoals(true)
	if len(goals) != 1 || goals[0].Name != "b" {
		t.Fatalf("goals=%v", goals)
	}
}

func TestListGoalsSorted(t *testing.T) {
	svc := newTestService(t, "zen", "art", "music")
	goals := svc.ListGoals(false)
	if len(goals) != 3 || goals[0].Name != "art" || goals[1].Name != "music" || goals[2].Name != "zen" {
		t.Fatalf("order=%v", goals)
	}
}

func TestSeedDemo(t *testing.T) {
	svc := newTestService(t)
	g, err := svc.SeedDemo("Demo", rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if g.Name != "demo" || len(g.History) == 0 || len(g.History) > 365 {
		t.Fatalf("goal=%s entries=%d", g.Name, len(g.History))
	}
	earliest := testToday.AddDate(0, 0, -364)
	for key, v := range g.History {
		if v < 1 || v > 10 {
			t.Fatalf("value %d out of range on %s", v, key)
		}
		d, err := ParseDay(key)
		if err != nil {
			t.Fatalf("bad key %s", key)
		}
		if d.Before(Day(earliest)) || d.After(Day(testToday)) {
			t.Fatalf("date %s outside window", key)
		}
	}
	if svc.Document().Profile.XP != 0 {
		t.Fatalf("seeding must not grant XP")
	}
}
