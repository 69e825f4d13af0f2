package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"goaltrack/internal/engine"
	"goaltrack/internal/ui"
)

func newEditCmd() *cobra.Command {
	var unit string
	var stat string

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Change a goal's unit or stat",
		Args:  requireName,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in engine.EditGoalInput
			if cmd.Flags().Changed("unit") {
				in.Unit = &unit
			}
			if cmd.Flags().Changed("stat") {
				in.Stat = &stat
			}
			if in.Unit == nil && in.Stat == nil {
				return errors.New("nothing to change (use --unit and/or --stat)")
			}

			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := s.svc.EditGoal(args[0], in); err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}

			g, err := s.svc.Goal(args[0])
			if err != nil {
				return err
			}
			st, _ := engine.ParseStat(g.Stat)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconSparkle+" Updated"),
				ui.Key.Render(g.Name),
				ui.LabelValue("unit", orDash(g.Unit)),
				ui.LabelValue("stat", ui.StatStyle(st).Render(st.Name())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "", "Unit label (empty clears it)")
	cmd.Flags().StringVarP(&stat, "stat", "s", "", "Stat (STR|AGI|INT|VIT|PER, or none)")

	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
