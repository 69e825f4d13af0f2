package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goaltrack/internal/engine"
	"goaltrack/internal/ui"
)

func newBadgesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "List every badge and whether you hold it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Badges"))
			for _, st := range engine.BadgeStatuses(s.svc.Document().Profile) {
				mark := ui.Muted.Render("🔒")
				name := ui.Muted.Render(st.Name)
				if st.Earned {
					mark = st.Icon
					name = ui.Key.Render(st.Name)
				}
				fmt.Fprintf(out, "%s %s %s\n", mark, name, ui.Muted.Render("· "+st.Description))
			}
			return nil
		},
	}

	return cmd
}
