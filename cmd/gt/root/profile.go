package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goaltrack/internal/engine"
	"goaltrack/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"status"},
		Short:   "Show level, rank, stats and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			view := engine.ComputeProfileView(s.svc.Document().Profile)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconCrown, "Hunter Profile"))
			fmt.Fprintln(out, ui.LabelValue("Level", view.Level))
			fmt.Fprintln(out, ui.LabelValue("Rank", ui.Gold.Render(view.Rank)))
			fmt.Fprintf(out, "%s %s\n", ui.LabelValue("XP", fmt.Sprintf("%d/%d", view.XP, view.NextLevelXP)), ui.ProgressBar(view.Progress, 24))
			fmt.Fprintln(out, ui.LabelValue("Daily quests", view.QuestsCompleted))
			if days := engine.QuestDays(s.svc.Document().Profile); len(days) > 0 {
				fmt.Fprintln(out, ui.LabelValue("Last quest", days[len(days)-1]))
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, ui.H2.Render(ui.IconChart+" Stats"))
			for _, sv := range view.Stats {
				fmt.Fprintf(out, "- %s %s %d\n", ui.StatIcon(sv.Stat), ui.StatStyle(sv.Stat).Render(fmt.Sprintf("%-12s", sv.Stat.Name())), sv.Value)
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Badges (%d/%d)", ui.IconTrophy, len(view.Badges), len(engine.BadgeCatalog()))))
			if len(view.Badges) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("None yet. Log progress to earn your first."))
			}
			for _, b := range view.Badges {
				fmt.Fprintf(out, "- %s %s %s\n", b.Icon, ui.Key.Render(b.Name), ui.Muted.Render(b.Description))
			}
			return nil
		},
	}

	return cmd
}
