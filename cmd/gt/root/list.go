package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goaltrack/internal/engine"
	"goaltrack/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			goals := s.svc.ListGoals(all)
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Tracked Goals"))
			if len(goals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No goals yet. Start with: gt add <name>"))
				return nil
			}
			for _, g := range goals {
				st := engine.ComputeGoalStats(g.History, s.svc.Today())
				line := "- " + ui.Key.Render(g.Name)
				if stat, err := engine.ParseStat(g.Stat); err == nil && stat != engine.StatNone {
					line += " " + ui.StatStyle(stat).Render(string(stat))
				}
				total := fmt.Sprintf("total %d", st.Total)
				if g.Unit != "" {
					total += " " + g.Unit
				}
				line += " " + ui.Muted.Render(fmt.Sprintf("(%s, streak %d)", total, st.CurrentStreak))
				if g.Archived {
					line += " " + ui.ArchivedTag(true)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include archived goals")

	return cmd
}
