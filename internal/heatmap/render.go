package heatmap

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"goaltrack/internal/engine"
	"goaltrack/internal/storage"
	"goaltrack/internal/ui"
)

// Rendered is a goal heatmap ready for printing.
type Rendered struct {
	Title  string
	Period string
	Rows   []string
	Banner []string
}

func (r Rendered) String() string {
	var b strings.Builder
	b.WriteString(r.Title)
	b.WriteString("\n")
	b.WriteString(r.Period)
	b.WriteString("\n\n")
	for _, row := range r.Rows {
		b.WriteString(row)
		b.WriteString("\n")
	}
	if len(r.Banner) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(r.Banner, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderGoal draws the standard window for goal as of today.
func RenderGoal(goal *storage.Goal, today time.Time) Rendered {
	grid := Build(goal.History, today)
	stats := engine.ComputeGoalStats(goal.History, today)

	title := ui.Heading(ui.IconTarget, "Goal: "+DisplayName(goal.Name))
	if goal.Archived {
		title += " " + ui.ArchivedTag(true)
	}
	return Rendered{
		Title:  title,
		Period: ui.Muted.Render(fmt.Sprintf("Tracking period: %s to %s", engine.DayKey(grid.Start), engine.DayKey(grid.Today))),
		Rows:   RenderRows(grid),
		Banner: Banner(stats, goal.Unit),
	}
}

// RenderRows draws one labelled line per weekday.
func RenderRows(g Grid) []string {
	rows := make([]string, 0, daysPerWeek)
	for i, cells := range g.Rows {
		var b strings.Builder
		fmt.Fprintf(&b, "%-4s", DayLabels[i])
		for _, c := range cells {
			b.WriteString(ui.HeatCell(int(c.Bucket)))
			b.WriteString(" ")
		}
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}
	return rows
}

// Banner summarizes the statistics under the grid.
func Banner(s engine.GoalStats, unit string) []string {
	suffix := ""
	if unit != "" {
		suffix = " " + unit
	}
	streak := fmt.Sprintf("%s %s %s", ui.IconFlame, ui.LabelValue("Streak", fmt.Sprintf("%d days", s.CurrentStreak)), ui.Muted.Render(fmt.Sprintf("(best %d)", s.LongestStreak)))
	total := ui.LabelValue("Total", fmt.Sprintf("%d%s", s.Total, suffix))
	avg := ui.LabelValue("Avg", fmt.Sprintf("%.1f%s/day", s.Average, suffix))
	best := fmt.Sprintf("%s %s", ui.IconCal, ui.LabelValue("Best day", s.BestDay))
	week := ui.LabelValue("This week", fmt.Sprintf("%d%s %s", s.ThisWeek, suffix, ui.Muted.Render(fmt.Sprintf("(%s vs last week)", ui.Signed(s.WeekDelta())))))
	return []string{
		strings.Join([]string{streak, total, avg}, "   "),
		strings.Join([]string{best, week}, "   "),
	}
}

// Legend shows the buckets from low to high. Print it once per output.
func Legend() string {
	cells := make([]string, 0, BucketMax+1)
	for b := BucketEmpty; b <= BucketMax; b++ {
		cells = append(cells, ui.HeatCell(int(b)))
	}
	return "Less " + strings.Join(cells, " ") + " More"
}

// DisplayName title-cases a goal name for headings.
func DisplayName(name string) string {
	return cases.Title(language.English).String(name)
}
