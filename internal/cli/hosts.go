package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rileyhilliard/remotes/internal/config"
	"github.com/rileyhilliard/remotes/internal/errors"
	"github.com/rileyhilliard/remotes/internal/ui"
	"github.com/rileyhilliard/remotes/internal/util"
	"github.com/rileyhilliard/remotes/pkg/sshutil"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// HostsOutput is the --json / --output yaml payload of the hosts command.
type HostsOutput struct {
	ConfigPath string                `json:"config_path" yaml:"config_path"`
	Hosts      []config.ResolvedHost `json:"hosts" yaml:"hosts"`
}

func newHostsCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "hosts",
		Short: "List remote hosts with their effective settings",
		Long: `List every remote host in declaration order, with per-host settings
layered over the [remote] defaults.

Examples:
  remotes hosts
  remotes hosts --json
  remotes hosts --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, hosts, err := loadHosts(opts)
			if err != nil {
				return err
			}
			out := HostsOutput{ConfigPath: path, Hosts: hosts}

			switch {
			case opts.jsonOutput:
				return WriteJSONSuccess(cmd.OutOrStdout(), out)
			case format == "yaml":
				return writeYAML(cmd.OutOrStdout(), out)
			case format == "table":
				return renderHosts(cmd.OutOrStdout(), out)
			default:
				return errors.New(errors.ErrConfig,
					"Unknown output format: "+format,
					"Use --output table or --output yaml.")
			}
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "table", "output format: table or yaml")
	return cmd
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Couldn't encode YAML output", "")
	}
	return enc.Close()
}

func renderHosts(w io.Writer, out HostsOutput) error {
	if out.ConfigPath == "" {
		fmt.Fprintln(w, "No config file found.")
		fmt.Fprintf(w, "\nCreate ~/.config/%s with a [remote] table, or pass --config.\n", config.ConfigFileName)
		return nil
	}
	if len(out.Hosts) == 0 {
		fmt.Fprintf(w, "No remote hosts configured in %s\n", out.ConfigPath)
		return nil
	}

	// A broken ssh config only costs us the annotation column.
	aliases, _ := sshutil.LoadAliases(sshConfigPath())

	rows := make([][]string, len(out.Hosts))
	for i, h := range out.Hosts {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			h.Destination,
			util.JoinOrNone(h.SSHArguments),
			topgradePathLabel(h),
			sshConfigLabel(aliases, h.Destination),
		}
	}

	columns := []ui.TableColumn{
		{Title: "#"},
		{Title: "DESTINATION"},
		{Title: "SSH ARGUMENTS"},
		{Title: "TOPGRADE PATH"},
		{Title: "SSH CONFIG"},
	}

	fmt.Fprintln(w, ui.Muted(out.ConfigPath))
	fmt.Fprintln(w, ui.RenderSimpleTable(columns, rows))
	fmt.Fprintf(w, "%d remote %s\n", len(out.Hosts), util.Pluralize(len(out.Hosts), "host", "hosts"))
	return nil
}

func topgradePathLabel(h config.ResolvedHost) string {
	if h.TopgradePath == nil {
		return "(PATH)"
	}
	return *h.TopgradePath
}

func sshConfigLabel(aliases sshutil.Aliases, destination string) string {
	entry, ok := aliases.Lookup(destination)
	if !ok {
		return ""
	}
	return ui.SymbolArrow + " " + entry.Description()
}
