package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"goaltrack/internal/ui"
)

func newRmCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"delete"},
		Short:   "Delete a goal and its history permanently",
		Args:    requireName,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("deleting erases all history; pass --yes to confirm (or use gt archive)")
			}
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := s.svc.DeleteGoal(args[0]); err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Bad.Render("🗑️ Deleted"), ui.Key.Render(args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")

	return cmd
}
