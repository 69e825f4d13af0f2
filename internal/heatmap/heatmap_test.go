package heatmap

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goaltrack/internal/storage"
)

// Thursday.
var today = time.Date(2024, 1, 4, 18, 0, 0, 0, time.UTC)

func TestBucketFor(t *testing.T) {
	tests := []struct {
		count, max int
		want       Bucket
	}{
		{0, 10, BucketEmpty},
		{-3, 10, BucketEmpty},
		{1, 10, BucketLow},
		{2, 8, BucketMedium},
		{4, 8, BucketHigh},
		{6, 8, BucketMax},
		{8, 8, BucketMax},
		{5, 0, BucketMax},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BucketFor(tt.count, tt.max), "BucketFor(%d, %d)", tt.count, tt.max)
	}
}

func TestBucketForIsMonotonic(t *testing.T) {
	for maxCount := 0; maxCount <= 20; maxCount++ {
		prev := BucketFor(-5, maxCount)
		for count := -4; count <= maxCount+5; count++ {
			b := BucketFor(count, maxCount)
			require.GreaterOrEqual(t, int(b), int(prev), "count %d max %d", count, maxCount)
			prev = b
		}
	}
}

func TestBuildGeometry(t *testing.T) {
	g := Build(map[string]int{}, today)

	assert.Equal(t, "2023-01-01", g.Start.Format(storage.DateLayout))
	assert.Equal(t, time.Sunday, g.Start.Weekday())

	// Sunday through Thursday reach today; Friday and Saturday stop a week short.
	for row := 0; row <= 4; row++ {
		assert.Len(t, g.Rows[row], Weeks+1, "row %d", row)
	}
	assert.Len(t, g.Rows[5], Weeks)
	assert.Len(t, g.Rows[6], Weeks)

	last := g.Rows[4][len(g.Rows[4])-1]
	assert.Equal(t, "2024-01-04", last.Date.Format(storage.DateLayout))
	for _, row := range g.Rows {
		for _, c := range row {
			require.False(t, c.Date.After(g.Today), "cell %s after today", c.Date)
		}
	}
	for row, cells := range g.Rows {
		for col, c := range cells {
			assert.Equal(t, time.Weekday(row), c.Date.Weekday(), "row %d col %d", row, col)
		}
	}
}

func TestBuildCountsAndBuckets(t *testing.T) {
	history := map[string]int{
		"2024-01-04": 8,
		"2023-06-01": 2,
		"2022-12-01": 100, // outside the window, still sets the scale
		"junk":       50,
	}
	g := Build(history, today)
	assert.Equal(t, 100, g.MaxCount)

	found := map[string]Cell{}
	for _, row := range g.Rows {
		for _, c := range row {
			found[c.Date.Format(storage.DateLayout)] = c
		}
	}
	assert.Equal(t, 8, found["2024-01-04"].Count)
	assert.Equal(t, BucketLow, found["2024-01-04"].Bucket)
	assert.Equal(t, 2, found["2023-06-01"].Count)
	assert.Equal(t, BucketEmpty, found["2023-06-02"].Bucket)
	assert.NotContains(t, found, "2022-12-01")
}

func TestRenderGoal(t *testing.T) {
	goal := &storage.Goal{
		Name:    "morning run",
		Created: "2024-01-01",
		History: map[string]int{"2024-01-03": 2, "2024-01-04": 3},
		Unit:    "km",
	}
	r := RenderGoal(goal, today)

	assert.Contains(t, r.Title, "Goal: Morning Run")
	assert.Contains(t, r.Period, "Tracking period: 2023-01-01 to 2024-01-04")
	require.Len(t, r.Rows, 7)
	for i, row := range r.Rows {
		assert.True(t, strings.HasPrefix(row, DayLabels[i]), "row %d: %q", i, row)
	}
	assert.Equal(t, Weeks+1, strings.Count(r.Rows[0], "■"))
	assert.Equal(t, Weeks, strings.Count(r.Rows[6], "■"))

	banner := strings.Join(r.Banner, "\n")
	assert.Contains(t, banner, "2 days")
	assert.Contains(t, banner, "5 km")
	assert.Contains(t, banner, "Thursday")
	assert.Contains(t, banner, "2.5 km/day")

	out := r.String()
	assert.Contains(t, out, "Tracking period")
	assert.NotContains(t, out, "Less", "legend is appended by the caller")
}

func TestRenderArchivedGoal(t *testing.T) {
	goal := &storage.Goal{Name: "gym", History: map[string]int{}, Archived: true}
	r := RenderGoal(goal, today)
	assert.Contains(t, r.Title, "archived")
	assert.Contains(t, strings.Join(r.Banner, "\n"), "none")
}

func TestLegend(t *testing.T) {
	l := Legend()
	assert.True(t, strings.HasPrefix(l, "Less "))
	assert.True(t, strings.HasSuffix(l, " More"))
	assert.Equal(t, 5, strings.Count(l, "■"))
}
