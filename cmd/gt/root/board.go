package root

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"goaltrack/internal/engine"
	"goaltrack/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, s.svc, s, cmd.OutOrStdout())
		},
	}

	return cmd
}

// Persist implements tui.Persister.
func (s *session) Persist(ctx context.Context, res *engine.LogResult) error {
	if res == nil {
		return errors.New("nothing to persist")
	}
	if err := s.save(); err != nil {
		return err
	}
	s.record(ctx, res.JournalEntries(now))
	return nil
}
