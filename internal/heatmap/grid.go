// Package heatmap builds the 52-week calendar grid of a goal history and
// renders it with its statistics banner.
package heatmap

import (
	"time"

	"goaltrack/internal/engine"
)

const (
	// Weeks is the trailing window shown; the grid has Weeks+1 columns.
	Weeks       = 52
	daysPerWeek = 7
)

// DayLabels are the row labels, Sunday first.
var DayLabels = [daysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Bucket is a relative intensity tier.
type Bucket int

const (
	BucketEmpty Bucket = iota
	BucketLow
	BucketMedium
	BucketHigh
	BucketMax
)

// BucketFor places count relative to maxCount. Zero and negative counts are
// empty; the 25/50/75% thresholds use strict less-than.
func BucketFor(count, maxCount int) Bucket {
	if count <= 0 {
		return BucketEmpty
	}
	if maxCount < 1 {
		maxCount = 1
	}
	pct := float64(count) / float64(maxCount)
	switch {
	case pct < 0.25:
		return BucketLow
	case pct < 0.50:
		return BucketMedium
	case pct < 0.75:
		return BucketHigh
	default:
		return BucketMax
	}
}

type Cell struct {
	Date   time.Time
	Count  int
	Bucket Bucket
}

// Grid is 7 weekday rows (0=Sunday) of week columns, oldest first. Rows end
// at today, so trailing rows may be one cell shorter.
type Grid struct {
	Start    time.Time
	Today    time.Time
	MaxCount int
	Rows     [daysPerWeek][]Cell
}

// Build lays out the standard Weeks window ending today.
func Build(history map[string]int, today time.Time) Grid {
	return BuildWeeks(history, today, Weeks)
}

// BuildWeeks starts weeks weeks before today, rolled back to a Sunday, and
// fills weeks+1 columns, omitting days after today.
func BuildWeeks(history map[string]int, today time.Time, weeks int) Grid {
	today = engine.Day(today)
	start := engine.WeekStart(today.AddDate(0, 0, -7*weeks))

	maxCount := 0
	for _, v := range history {
		if v > maxCount {
			maxCount = v
		}
	}

	g := Grid{Start: start, Today: today, MaxCount: maxCount}
	for row := 0; row < daysPerWeek; row++ {
		cells := make([]Cell, 0, weeks+1)
		for col := 0; col <= weeks; col++ {
			d := start.AddDate(0, 0, row+col*daysPerWeek)
			if d.After(today) {
				break
			}
			count := history[engine.DayKey(d)]
			cells = append(cells, Cell{Date: d, Count: count, Bucket: BucketFor(count, maxCount)})
		}
		g.Rows[row] = cells
	}
	return g
}
