package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/remotes/internal/config"
	"github.com/rileyhilliard/remotes/internal/ui"
	"github.com/rileyhilliard/remotes/pkg/sshutil"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. REMOTES_CONFIG.
const envPrefix = "REMOTES"

// Swappable in tests.
var (
	appFs         afero.Fs = afero.NewOsFs()
	sshConfigPath          = sshutil.DefaultConfigPath
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	noColor    bool
	jsonOutput bool

	// settings layers --config over REMOTES_CONFIG.
	settings *viper.Viper
}

// NewRootCmd builds the remotes command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{settings: viper.New()}

	root := &cobra.Command{
		Use:   "remotes",
		Short: "Resolve topgrade's remote host settings",
		Long: `remotes reads topgrade.toml and shows the effective settings for every
remote host topgrade would upgrade over ssh.

Hosts come from the [remote] table:

  [remote]
  ssh_arguments = ["-o", "ConnectTimeout=2"]
  topgrade_path = "~/.cargo/bin/topgrade"

  [[remote.hosts]]
  destination = "pi@raspberry"
  topgrade_path = "topgrade"

or from the older top-level keys remote_topgrades, ssh_arguments and
remote_topgrade_path. Listing hosts in both places is an error.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.configPath = opts.settings.GetString("config")
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				ui.ConfigureColor(f, opts.noColor)
			} else {
				ui.DisableColors()
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to topgrade.toml (default: $REMOTES_CONFIG, then the config dirs)")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output machine-readable JSON")

	opts.settings.SetEnvPrefix(envPrefix)
	_ = opts.settings.BindEnv("config")
	_ = opts.settings.BindPFlag("config", root.PersistentFlags().Lookup("config"))

	root.AddCommand(
		newHostsCmd(opts),
		newCommandCmd(opts),
		newMigrateCmd(opts),
		newVersionCmd(),
		newCompletionCmd(root),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		reportError(root, err)
		os.Exit(1)
	}
}

func reportError(root *cobra.Command, err error) {
	if jsonFlag, _ := root.PersistentFlags().GetBool("json"); jsonFlag {
		_ = WriteJSONFromError(root.OutOrStdout(), err)
		return
	}
	fmt.Fprint(root.ErrOrStderr(), err.Error())
}

func newLoader() *config.Loader {
	return config.NewLoader(appFs)
}

// loadHosts resolves the hosts of the selected config file.
func loadHosts(opts *globalOptions) (string, []config.ResolvedHost, error) {
	return newLoader().LoadHosts(opts.configPath)
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion scripts for remotes.

Examples:
  remotes completion bash > /etc/bash_completion.d/remotes
  remotes completion zsh > "${fpath[1]}/_remotes"
  remotes completion fish > ~/.config/fish/completions/remotes.fish`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return genCompletion(root, args[0], cmd.OutOrStdout())
		},
	}
}

func genCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletion(w)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	default:
		return root.GenPowerShellCompletion(w)
	}
}
