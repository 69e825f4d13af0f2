package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goaltrack/internal/engine"
	"goaltrack/internal/storage"
	"goaltrack/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int
	var goal string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the event journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			journal, err := s.requireJournal()
			if err != nil {
				return err
			}

			var entries []storage.JournalEntry
			if goal != "" {
				name, err := engine.NormalizeName(goal)
				if err != nil {
					return err
				}
				entries, err = journal.ListByGoal(ctx, name, limit)
				if err != nil {
					return err
				}
			} else {
				entries, err = journal.ListRecent(ctx, limit)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Journal"))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing recorded yet."))
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s %s %-12s %s %s\n",
					ui.Muted.Render(e.At.Local().Format("2006-01-02 15:04")),
					ui.Key.Render(e.Goal),
					e.Kind,
					ui.Signed(e.Amount),
					ui.Muted.Render(e.Detail))
			}

			since := engine.DayKey(s.svc.Today().AddDate(0, 0, -6))
			byDay, err := journal.SumByDay(ctx, since, engine.XPKinds()...)
			if err != nil {
				return err
			}
			week := 0
			for _, xp := range byDay {
				week += xp
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.LabelValue("XP earned (last 7 days)", week))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Entries to show")
	cmd.Flags().StringVarP(&goal, "goal", "g", "", "Only entries for this goal")

	return cmd
}
