package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goaltrack/internal/heatmap"
	"goaltrack/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <name>",
		Short: "Show statistics for a goal",
		Args:  requireName,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := s.svc.Goal(args[0])
			if err != nil {
				return err
			}
			st, err := s.svc.Stats(g.Name)
			if err != nil {
				return err
			}

			unit := ""
			if g.Unit != "" {
				unit = " " + g.Unit
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Stats: "+heatmap.DisplayName(g.Name)))
			fmt.Fprintln(out, ui.LabelValue("Created", g.Created))
			fmt.Fprintln(out, ui.LabelValue("Current streak", fmt.Sprintf("%d days", st.CurrentStreak)))
			fmt.Fprintln(out, ui.LabelValue("Longest streak", fmt.Sprintf("%d days", st.LongestStreak)))
			fmt.Fprintln(out, ui.LabelValue("Total", fmt.Sprintf("%d%s", st.Total, unit)))
			fmt.Fprintln(out, ui.LabelValue("Active days", st.ActiveDays))
			fmt.Fprintln(out, ui.LabelValue("Daily average", fmt.Sprintf("%.2f%s", st.Average, unit)))
			fmt.Fprintln(out, ui.LabelValue("Best day", st.BestDay))
			fmt.Fprintln(out, ui.LabelValue("This week", fmt.Sprintf("%d%s", st.ThisWeek, unit)))
			fmt.Fprintln(out, ui.LabelValue("Last week", fmt.Sprintf("%d%s", st.LastWeek, unit)))

			delta := ui.Signed(st.WeekDelta())
			switch {
			case st.WeekDelta() > 0:
				delta = ui.Good.Render(delta)
			case st.WeekDelta() < 0:
				delta = ui.Bad.Render(delta)
			default:
				delta = ui.Muted.Render(delta)
			}
			fmt.Fprintln(out, ui.LabelValue("Week over week", delta))
			return nil
		},
	}

	return cmd
}
