package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"goaltrack/internal/engine"
	"goaltrack/internal/ui"
)

func newAddCmd() *cobra.Command {
	var unit string
	var stat string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Track a new goal (or restore an archived one)",
		Args:  requireName,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := s.svc.AddGoal(engine.AddGoalInput{Name: args[0], Unit: unit, Stat: stat})
			var dup engine.DuplicateNameError
			if errors.As(err, &dup) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Goal '%s' already exists.\n", ui.Warn.Render(ui.IconInfo), dup.Goal)
				return nil
			}
			if err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}

			if res.Restored {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconUndo+" Restored"), ui.Key.Render(res.Name), ui.Muted.Render("(history kept)"))
				return nil
			}
			line := fmt.Sprintf("%s %s", ui.Good.Render(ui.IconPlus+" Tracking"), ui.Key.Render(res.Name))
			g, _ := s.svc.Goal(res.Name)
			if g != nil && g.Stat != "" {
				st, _ := engine.ParseStat(g.Stat)
				line += " " + ui.StatStyle(st).Render(ui.StatIcon(st)+" "+string(st))
			}
			if unit != "" {
				line += " " + ui.Muted.Render("("+unit+")")
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "", "Unit label (e.g. pages, km)")
	cmd.Flags().StringVarP(&stat, "stat", "s", "", "Stat trained by this goal (STR|AGI|INT|VIT|PER)")

	return cmd
}
