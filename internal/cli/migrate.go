package cli

import (
	"fmt"

	"github.com/rileyhilliard/remotes/internal/config"
	"github.com/rileyhilliard/remotes/internal/errors"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Print a [remote] table equivalent to the deprecated remote keys",
		Long: `Convert remote_topgrades, ssh_arguments and remote_topgrade_path into
the [remote] table format and print it. The config file is not modified.

Paste the output into topgrade.toml and delete the old top-level keys.

Examples:
  remotes migrate
  remotes migrate --config ./topgrade.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := newLoader()
			path, err := loader.Find(opts.configPath)
			if err != nil {
				return err
			}
			if path == "" {
				return errors.New(errors.ErrConfigNotFound,
					"Config file not found",
					"Pass the file to migrate with --config.")
			}

			doc, err := loader.Load(path)
			if err != nil {
				return err
			}

			switch doc.Classify() {
			case config.LayoutBoth:
				_, err := config.Resolve(doc)
				return err
			case config.LayoutCurrent:
				fmt.Fprintln(cmd.OutOrStdout(), "Already using [remote]; nothing to migrate.")
				return nil
			case config.LayoutNeither:
				fmt.Fprintln(cmd.OutOrStdout(), "No deprecated remote hosts found; nothing to migrate.")
				return nil
			}

			out, err := config.Migrate(*doc.Deprecated).TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
