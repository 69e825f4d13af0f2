package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"goaltrack/internal/engine"
	"goaltrack/internal/heatmap"
	"goaltrack/internal/storage"
	"goaltrack/internal/ui"
)

type boardModel struct {
	ctx   context.Context
	svc   *engine.Service
	store Persister

	width  int
	height int

	goals        []*storage.Goal
	selected     int
	showArchived bool
	// saving is set while a persist Cmd reads the document; logging waits.
	saving bool

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	goals []*storage.Goal
}

type persistedMsg struct {
	res *engine.LogResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service, store Persister) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		store:   store,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	goals := m.svc.ListGoals(m.showArchived)
	return func() tea.Msg {
		return loadedMsg{goals: goals}
	}
}

func (m boardModel) persistCmd(res *engine.LogResult) tea.Cmd {
	return func() tea.Msg {
		if m.store == nil {
			return persistedMsg{res: res}
		}
		return persistedMsg{res: res, err: m.store.Persist(m.ctx, res)}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.goals = msg.goals
		m.selected = clamp(m.selected, 0, len(m.goals)-1)
		m.lastLog = fmt.Sprintf("Refreshed (%d goals).", len(m.goals))
		return m, nil
	case persistedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			m.lastLog = "Save failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = describeLog(msg.res)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "a":
			m.showArchived = !m.showArchived
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.goals)-1 {
				m.selected++
			}
			return m, nil
		case "+", "=", " ", "enter":
			return m.logSelected(1)
		case "-":
			return m.logSelected(-1)
		}
	}
	return m, nil
}

// logSelected applies delta to today's entry of the selected goal. The
// document is mutated here, on the update loop, and never while a save is
// still reading it.
func (m boardModel) logSelected(delta int) (tea.Model, tea.Cmd) {
	if m.saving {
		m.lastLog = "Still saving…"
		return m, nil
	}
	g := m.selectedGoal()
	if g == nil {
		m.lastLog = "No goal selected."
		return m, nil
	}
	res, err := m.svc.LogEvent(g.Name, m.svc.Today(), delta)
	if err != nil {
		m.lastLog = "Log failed: " + err.Error()
		return m, nil
	}
	m.saving = true
	m.lastLog = fmt.Sprintf("Saving %s…", g.Name)
	return m, m.persistCmd(res)
}

func (m boardModel) selectedGoal() *storage.Goal {
	if m.selected < 0 || m.selected >= len(m.goals) {
		return nil
	}
	return m.goals[m.selected]
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		ui.Panel.Width(28).Render(m.renderSidebar()),
		" ",
		ui.Panel.Render(m.renderProfile()),
	)
	return m.renderHeader() + "\n" + top + "\n" + m.renderMain() + m.renderFooter()
}

func (m boardModel) renderHeader() string {
	p := m.svc.Document().Profile
	next := engine.XPRequiredForLevel(p.Level)
	return fmt.Sprintf("%s | Level %d %s | XP %d/%d %s",
		ui.Title.Render(ui.IconTarget+" Goal Board"),
		p.Level,
		ui.Gold.Render(engine.RankForLevel(p.Level)),
		p.XP, next,
		ui.ProgressBar(float64(p.XP)/float64(next), 30))
}

func (m boardModel) renderSidebar() string {
	lines := []string{ui.PanelTitle.Render("Goals")}
	if m.loading {
		return strings.Join(append(lines, "Loading…"), "\n")
	}
	if len(m.goals) == 0 {
		lines = append(lines, ui.Muted.Render("(none: gt add <name>)"))
	}
	today := m.svc.Today()
	for i, g := range m.goals {
		current, _ := engine.ComputeStreaks(g.History, today)
		label := fmt.Sprintf("%s %s%d", g.Name, ui.IconFlame, current)
		if g.Archived {
			label += " (arch)"
		}
		if i == m.selected {
			lines = append(lines, ui.SelectedRow.Render("> "+label))
		} else {
			lines = append(lines, "  "+label)
		}
	}
	lines = append(lines, "",
		ui.PanelTitle.Render("Keys"),
		"↑/↓ j/k  move",
		"+/space  log +1",
		"-        log -1",
		"a        archived",
		"r        refresh",
		"q        quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderProfile() string {
	view := engine.ComputeProfileView(m.svc.Document().Profile)
	lines := []string{ui.PanelTitle.Render("Stats")}
	for _, sv := range view.Stats {
		lines = append(lines, fmt.Sprintf("%s %s", ui.StatStyle(sv.Stat).Render(string(sv.Stat)), renderStatBar(sv.Value)))
	}
	lines = append(lines, "",
		ui.LabelValue("Badges", fmt.Sprintf("%d/%d", len(view.Badges), len(engine.BadgeCatalog()))),
		ui.LabelValue("Daily quests", view.QuestsCompleted))
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	g := m.selectedGoal()
	if g == nil {
		return ""
	}
	return "\n" + heatmap.RenderGoal(g, m.svc.Today()).String() + heatmap.Legend() + "\n"
}

func (m boardModel) renderFooter() string {
	return "\n" + ui.Muted.Render(m.lastLog)
}

func describeLog(res *engine.LogResult) string {
	if res == nil {
		return ""
	}
	parts := []string{fmt.Sprintf("Logged %s %s (now %d)", res.Goal, ui.Signed(res.Delta), res.Value)}
	if xp := engine.TotalXP(res.Events); xp > 0 {
		parts = append(parts, fmt.Sprintf("+%d XP", xp))
	}
	for _, e := range res.Events {
		switch e.Kind {
		case engine.EventLevelUp:
			parts = append(parts, fmt.Sprintf("level %d!", e.Level))
		case engine.EventDailyQuest:
			parts = append(parts, "daily quest complete")
		case engine.EventBadge:
			parts = append(parts, "badge: "+e.Badge.Name)
		}
	}
	return strings.Join(parts, " · ")
}

// renderStatBar scales a stat against the next multiple of 50.
func renderStatBar(value int) string {
	ceiling := (value/50 + 1) * 50
	return ui.ProgressBar(float64(value)/float64(ceiling), 14) + fmt.Sprintf(" %d", value)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
