package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goaltrack/internal/heatmap"
	"goaltrack/internal/storage"
	"goaltrack/internal/ui"
)

func newShowCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show the heatmap of one goal, or of every goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var goals []*storage.Goal
			if len(args) == 1 {
				g, err := s.svc.Goal(args[0])
				if err != nil {
					return err
				}
				goals = append(goals, g)
			} else {
				goals = s.svc.ListGoals(all)
			}

			out := cmd.OutOrStdout()
			if len(goals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No goals yet. Start with: gt add <name>"))
				return nil
			}
			for i, g := range goals {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprint(out, heatmap.RenderGoal(g, s.svc.Today()).String())
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, heatmap.Legend())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include archived goals")

	return cmd
}
