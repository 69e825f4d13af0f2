package root

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"goaltrack/internal/config"
	"goaltrack/internal/ui"
)

func newConfigCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration (or write a default file)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path := configPathForDisplay()

			if initFile {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists", path)
				}
				if err := config.SaveConfig(path, config.DefaultConfig()); err != nil {
					return fmt.Errorf("write config: %w", err)
				}
				fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconDone+" Wrote"), path)
				return nil
			}

			fmt.Fprintln(out, ui.Muted.Render("# "+path))
			return toml.NewEncoder(out).Encode(cfg)
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write the default config file")

	return cmd
}

func configPathForDisplay() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.DefaultPath()
}
