package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"goaltrack/internal/engine"
)

// Goal tracker theme (CLI + TUI).
// Kept small: reusable styles, heat colors and a few emojis.

const (
	IconTarget  = "🎯"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconFlame   = "🔥"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconBox     = "📦"
	IconUndo    = "↩️"
	IconScroll  = "📜"
	IconCrown   = "👑"
	IconChart   = "📊"
	IconCal     = "📅"
)

// Block is the glyph drawn for one heatmap day.
const Block = "■"

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

// HeatStyles colors heatmap buckets from empty to brightest.
var HeatStyles = [5]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
}

// HeatCell renders one block in the bucket's color. Out-of-range buckets
// clamp to the nearest end.
func HeatCell(bucket int) string {
	bucket = min(max(bucket, 0), len(HeatStyles)-1)
	return HeatStyles[bucket].Render(Block)
}

// StatStyle maps every stat to its color.
func StatStyle(s engine.Stat) lipgloss.Style {
	switch s {
	case engine.StatSTR:
		return lipgloss.NewStyle().Bold(true).Foreground(cBad)
	case engine.StatAGI:
		return lipgloss.NewStyle().Bold(true).Foreground(cGood)
	case engine.StatINT:
		return lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	case engine.StatVIT:
		return lipgloss.NewStyle().Bold(true).Foreground(cGold)
	case engine.StatPER:
		return lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	default:
		return Muted
	}
}

func StatIcon(s engine.Stat) string {
	switch s {
	case engine.StatSTR:
		return "💪"
	case engine.StatAGI:
		return "🏃"
	case engine.StatINT:
		return "🧠"
	case engine.StatVIT:
		return "❤️"
	case engine.StatPER:
		return "👁️"
	default:
		return "·"
	}
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ProgressBar draws fraction (0..1) as a fixed-width bar.
func ProgressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(fraction * float64(width))
	filled = min(max(filled, 0), width)
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}

// Signed formats n with an explicit sign.
func Signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

func ArchivedTag(archived bool) string {
	if archived {
		return Muted.Render("(archived)")
	}
	return ""
}
