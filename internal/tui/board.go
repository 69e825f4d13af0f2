package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"goaltrack/internal/engine"
)

// Persister stores the document after the board logs progress.
type Persister interface {
	Persist(ctx context.Context, res *engine.LogResult) error
}

func RunBoard(ctx context.Context, svc *engine.Service, store Persister, out io.Writer) error {
	m := newBoardModel(ctx, svc, store)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
