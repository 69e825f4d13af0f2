package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goaltrack/internal/heatmap"
	"goaltrack/internal/ui"
)

func newLogCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "log <name> [amount]",
		Short: "Log progress (+N adds, -N subtracts, N sets the day's value)",
		Long: `Log progress on a goal for today or for --date.

Amounts:
  +N   add N to the day's value (default +1)
  -N   subtract N
  N    set the day's value to N

Dates are YYYY-MM-DD, "today" or "yesterday".`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			amount := ""
			if len(args) > 1 {
				amount = args[1]
			}
			res, err := s.svc.LogAmount(args[0], amount, date)
			if err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}
			s.record(ctx, res.JournalEntries(now))
			logger.Debug("logged",
				zap.String("goal", res.Goal),
				zap.String("date", res.Date),
				zap.Int("delta", res.Delta),
				zap.Int("events", len(res.Events)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s %s\n",
				ui.Good.Render(ui.IconDone+" Logged"),
				ui.Key.Render(res.Goal),
				ui.Signed(res.Delta),
				ui.Muted.Render(fmt.Sprintf("on %s (now %d)", res.Date, res.Value)))

			g, _ := s.svc.Goal(res.Goal)
			if g != nil && g.Archived {
				fmt.Fprintln(out, ui.Muted.Render(ui.IconBox+" This goal is archived."))
			}
			printEvents(out, res.Events, s.svc.Document().Profile)

			if g != nil {
				fmt.Fprintln(out)
				fmt.Fprint(out, heatmap.RenderGoal(g, s.svc.Today()).String())
				fmt.Fprintln(out, heatmap.Legend())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Day to log (YYYY-MM-DD, today, yesterday)")

	return cmd
}
