package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goaltrack/internal/ui"
)

func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <name>",
		Short: "Hide a goal from default views (history kept)",
		Args:  requireName,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := s.svc.ArchiveGoal(args[0]); err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Warn.Render(ui.IconBox+" Archived"), ui.Key.Render(args[0]), ui.Muted.Render("(gt restore to bring it back)"))
			return nil
		},
	}

	return cmd
}
