package engine

import (
	"testing"

	"goaltrack/internal/storage"
)

func TestAddXPMultiLevel(t *testing.T) {
	p := storage.NewProfile()
	if gained := AddXP(&p, 350); gained != 2 {
		t.Fatalf("gained=%d, want 2", gained)
	}
	if p.Level != 3 || p.XP != 50 {
		t.Fatalf("level=%d xp=%d, want 3/50", p.Level, p.XP)
	}

	// Leaving level L costs L*100, so 250 stops at level 2. The "250 -> level 3,
	// xp 50" example in the requirements contradicts that formula; keep this.
	p = storage.NewProfile()
	AddXP(&p, 250)
	if p.Level != 2 || p.XP != 150 {
		t.Fatalf("level=%d xp=%d, want 2/150", p.Level, p.XP)
	}

	p = storage.NewProfile()
	if gained := AddXP(&p, 99); gained != 0 || p.Level != 1 || p.XP != 99 {
		t.Fatalf("gained=%d level=%d xp=%d", gained, p.Level, p.XP)
	}
	if gained := AddXP(&p, 1); gained != 1 || p.Level != 2 || p.XP != 0 {
		t.Fatalf("boundary: gained=%d level=%d xp=%d", gained, p.Level, p.XP)
	}
}

func TestStreakBonus(t *testing.T) {
	cases := map[int]int{0: 0, 1: 0, 2: 4, 5: 10, 10: 20, 40: 20}
	for streak, want := range cases {
		if got := StreakBonus(streak); got != want {
			t.Fatalf("StreakBonus(%d)=%d, want %d", streak, got, want)
		}
	}
}

func TestLogEventEmitsOrderedEvents(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.AddGoal(AddGoalInput{Name: "read", Stat: "INT"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	mustGoal(t, svc, "read").History["2024-01-03"] = 1

	res, err := svc.LogEvent("read", testToday, 1)
	if err != nil {
		t.Fatalf("log: %v", err)
	}

	wantKinds := []EventKind{EventXP, EventStreakBonus, EventStatUp, EventBadge}
	if len(res.Events) != len(wantKinds) {
		t.Fatalf("events=%+v, want kinds %v", res.Events, wantKinds)
	}
	for i, k := range wantKinds {
		if res.Events[i].Kind != k {
			t.Fatalf("event[%d]=%s, want %s", i, res.Events[i].Kind, k)
		}
	}
	if res.Events[0].XP != BaseXP || res.Events[1].XP != 4 || res.Events[1].Streak != 2 {
		t.Fatalf("xp events=%+v", res.Events[:2])
	}
	if res.Events[2].Stat != StatINT || res.Events[2].Value != 11 {
		t.Fatalf("stat event=%+v", res.Events[2])
	}
	if res.Events[3].Badge.ID != "first_step" {
		t.Fatalf("badge=%s, want first_step", res.Events[3].Badge.ID)
	}

	p := svc.Document().Profile
	if p.XP != 14 || p.Level != 1 || p.Stats["INT"] != 11 {
		t.Fatalf("profile=%+v", p)
	}
	if TotalXP(res.Events) != 14 {
		t.Fatalf("TotalXP=%d, want 14", TotalXP(res.Events))
	}
}

func TestLogEventLevelUp(t *testing.T) {
	svc := newTestService(t, "read")
	svc.Document().Profile.XP = 95

	res, err := svc.LogEvent("read", testToday, 1)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	var up *Event
	for i := range res.Events {
		if res.Events[i].Kind == EventLevelUp {
			up = &res.Events[i]
		}
	}
	if up == nil || up.Level != 2 || up.Levels != 1 {
		t.Fatalf("level up=%+v", up)
	}
	if p := svc.Document().Profile; p.Level != 2 || p.XP != 5 {
		t.Fatalf("level=%d xp=%d, want 2/5", p.Level, p.XP)
	}
}

func TestNonPositiveDeltaGrantsNothing(t *testing.T) {
	svc := newTestService(t, "read")
	for _, delta := range []int{0, -3} {
		res, err := svc.LogEvent("read", testToday, delta)
		if err != nil {
			t.Fatalf("log: %v", err)
		}
		if len(res.Events) != 0 {
			t.Fatalf("delta %d produced %+v", delta, res.Events)
		}
	}
	if p := svc.Document().Profile; p.XP != 0 || len(p.Badges) != 0 {
		t.Fatalf("profile=%+v", p)
	}
	if got := mustGoal(t, svc, "read").History["2024-01-04"]; got != -3 {
		t.Fatalf("history value=%d, want -3", got)
	}
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestDailyQuestExactlyOnce(t *testing.T) {
	svc := newTestService(t, "a", "b", "c", "d", "e")
	quests := 0
	for _, name := range []string{"a", "b", "c"} {
		res, err := svc.LogEvent(name, testToday, 1)
		if err != nil {
			t.Fatalf("log %s: %v", name, err)
		}
		quests += countKind(res.Events, EventDailyQuest)
	}
	if quests != 0 {
		t.Fatalf("quest fired with 3 goals")
	}

	res, err := svc.LogEvent("d", testToday, 1)
	if err != nil {
		t.Fatalf("log d: %v", err)
	}
	if countKind(res.Events, EventDailyQuest) != 1 {
		t.Fatalf("quest did not fire on the 4th goal: %+v", res.Events)
	}
	if !svc.Document().Profile.DailyQuests["2024-01-04"] {
		t.Fatalf("quest not recorded")
	}

	// Re-logging one of the four keeps the count at 4 but the day is spent.
	res, _ = svc.LogEvent("a", testToday, 1)
	if countKind(res.Events, EventDailyQuest) != 0 {
		t.Fatalf("quest fired twice")
	}
	// A 5th goal makes the count 5.
	res, _ = svc.LogEvent("e", testToday, 1)
	if countKind(res.Events, EventDailyQuest) != 0 {
		t.Fatalf("quest fired for 5 goals")
	}
}

func TestDailyQuestIgnoresArchivedAndPastDates(t *testing.T) {
	svc := newTestService(t, "a", "b", "c", "d")
	for _, name := range []string{"a", "b", "c"} {
		if _, err := svc.LogEvent(name, testToday, 1); err != nil {
			t.Fatalf("log: %v", err)
		}
	}
	if err := svc.ArchiveGoal("c"); err != nil {
		t.Fatalf("archive: %v", err)
	}
	res, _ := svc.LogEvent("d", testToday, 1)
	if countKind(res.Events, EventDailyQuest) != 0 {
		t.Fatalf("archived goal counted toward the quest")
	}

	svc = newTestService(t, "a", "b", "c", "d")
	yesterday := testToday.AddDate(0, 0, -1)
	for _, name := range []string{"a", "b", "c", "d"} {
		res, _ := svc.LogEvent(name, yesterday, 1)
		if countKind(res.Events, EventDailyQuest) != 0 {
			t.Fatalf("quest fired for a past date")
		}
	}
}

func TestBadgesAreMonotonic(t *testing.T) {
	svc := newTestService(t, "pushups")

	res, _ := svc.LogEvent("pushups", testToday, 100)
	got := map[string]bool{}
	for _, e := range res.Events {
		if e.Kind == EventBadge {
			got[e.Badge.ID] = true
		}
	}
	if !got["first_step"] || !got["total_100"] || got["total_500"] {
		t.Fatalf("badges=%v", got)
	}

	// Dropping the total never revokes, and a later positive log never duplicates.
	if _, err := svc.LogEvent("pushups", testToday, -100); err != nil {
		t.Fatalf("log: %v", err)
	}
	res, _ = svc.LogEvent("pushups", testToday, 1)
	if countKind(res.Events, EventBadge) != 0 {
		t.Fatalf("badge re-awarded: %+v", res.Events)
	}

	seen := map[string]int{}
	for _, id := range svc.Document().Profile.Badges {
		seen[id]++
	}
	if seen["first_step"] != 1 || seen["total_100"] != 1 {
		t.Fatalf("badges=%v", svc.Document().Profile.Badges)
	}
}

func TestStreakAndMultiGoalBadges(t *testing.T) {
	svc := newTestService(t, "a", "b", "c")
	g := mustGoal(t, svc, "a")
	g.History["2024-01-02"] = 1
	g.History["2024-01-03"] = 1

	res, _ := svc.LogEvent("a", testToday, 1)
	got := map[string]bool{}
	for _, e := range res.Events {
		if e.Kind == EventBadge {
			got[e.Badge.ID] = true
		}
	}
	if !got["streak_3"] || !got["multi_goal"] || got["streak_7"] {
		t.Fatalf("badges=%v", got)
	}
}

func TestJournalEntries(t *testing.T) {
	svc := newTestService(t, "read")
	res, err := svc.LogEvent("read", testToday, 2)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	entries := res.JournalEntries(testToday)
	if len(entries) != len(res.Events)+1 {
		t.Fatalf("entries=%d events=%d", len(entries), len(res.Events))
	}
	if entries[0].Kind != JournalKindLog || entries[0].Amount != 2 || entries[0].Day != "2024-01-04" {
		t.Fatalf("first entry=%+v", entries[0])
	}
	if entries[1].Kind != string(EventXP) || entries[1].Amount != BaseXP {
		t.Fatalf("xp entry=%+v", entries[1])
	}
}

func TestRankAndProfileView(t *testing.T) {
	ranks := map[int]string{
		1: "E-Rank", 9: "E-Rank", 10: "D-Rank", 29: "C-Rank", 44: "B-Rank",
		45: "A-Rank", 79: "S-Rank", 80: "National Level", 99: "National Level", 100: TopRank, 250: TopRank,
	}
	for level, want := range ranks {
		if got := RankForLevel(level); got != want {
			t.Fatalf("RankForLevel(%d)=%s, want %s", level, got, want)
		}
	}

	p := storage.Profile{Level: 2, XP: 50, Badges: []string{"first_step", "retired_badge"}, DailyQuests: map[string]bool{"2024-01-01": true, "2024-01-02": false}}
	view := ComputeProfileView(p)
	if view.Rank != "E-Rank" || view.NextLevelXP != 200 || view.Progress != 0.25 || view.QuestsCompleted != 1 {
		t.Fatalf("view=%+v", view)
	}
	if len(view.Stats) != 5 {
		t.Fatalf("stats=%v", view.Stats)
	}
	for _, sv := range view.Stats {
		if sv.Value != storage.DefaultStatValue {
			t.Fatalf("stat %s=%d, want default", sv.Stat, sv.Value)
		}
	}
	if len(view.Badges) != 2 || view.Badges[1].Name != "retired_badge" {
		t.Fatalf("badges=%+v", view.Badges)
	}
}
