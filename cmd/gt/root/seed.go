package root

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"goaltrack/internal/ui"
)

func newSeedCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "seed [name]",
		Short: "Generate a year of demo data (default goal: demo)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			name := "demo"
			if len(args) == 1 {
				name = args[0]
			}
			if !cmd.Flags().Changed("seed") {
				seed = now.UnixNano()
			}

			g, err := s.svc.SeedDemo(name, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconSparkle+" Demo data generated for"),
				ui.Key.Render(g.Name),
				ui.Muted.Render(fmt.Sprintf("(%d active days). Run: gt show %s", len(g.History), g.Name)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible data")

	return cmd
}
