package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goaltrack/internal/ui"
)

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <name>",
		Short: "Restore an archived goal",
		Long: `Restore an archived goal to the active list.

Its history, streaks and totals are untouched. Adding a goal under the name
of an archived one does the same.`,
		Args: requireName,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			changed, err := s.svc.RestoreGoal(args[0])
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Goal '%s' is not archived.\n", ui.Muted.Render(ui.IconInfo), args[0])
				return nil
			}
			if err := s.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconUndo+" Restored"), ui.Key.Render(args[0]))
			return nil
		},
	}

	return cmd
}
