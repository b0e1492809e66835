package cli

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/remotes/internal/config"
	"github.com/rileyhilliard/remotes/internal/errors"
	"github.com/rileyhilliard/remotes/internal/remote"
	"github.com/rileyhilliard/remotes/internal/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// HostCommand is the ssh invocation for one host.
type HostCommand struct {
	Destination string   `json:"destination"`
	Argv        []string `json:"argv"`
}

func newCommandCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "command [destination...]",
		Short: "Print the ssh command used for each remote host",
		Long: `Print the ssh command topgrade would run for each remote host.
Nothing is executed.

With destinations given, only matching hosts are printed. Duplicate
destinations are all printed, in config order.

Examples:
  remotes command
  remotes command pi@raspberry
  remotes command --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, hosts, err := loadHosts(opts)
			if err != nil {
				return err
			}

			selected, err := selectHosts(hosts, args)
			if err != nil {
				return err
			}

			cmds := lo.Map(selected, func(h config.ResolvedHost, _ int) HostCommand {
				return HostCommand{Destination: h.Destination, Argv: remote.Command(h)}
			})

			if opts.jsonOutput {
				return WriteJSONSuccess(cmd.OutOrStdout(), cmds)
			}
			for _, c := range cmds {
				fmt.Fprintln(cmd.OutOrStdout(), remote.Format(c.Argv))
			}
			return nil
		},
	}
}

// selectHosts keeps hosts whose destination is in wanted, preserving config
// order. An empty wanted list selects everything.
func selectHosts(hosts []config.ResolvedHost, wanted []string) ([]config.ResolvedHost, error) {
	if len(wanted) == 0 {
		return hosts, nil
	}

	destinations := lo.Uniq(lo.Map(hosts, func(h config.ResolvedHost, _ int) string { return h.Destination }))
	for _, w := range wanted {
		if lo.Contains(destinations, w) {
			continue
		}
		suggestion := "Run 'remotes hosts' to see the configured destinations."
		if similar := util.SuggestSimilar(w, destinations, 3); len(similar) > 0 {
			suggestion = fmt.Sprintf("Did you mean: %s?", strings.Join(similar, ", "))
		}
		return nil, errors.New(errors.ErrExec,
			fmt.Sprintf("No remote host with destination '%s'", w),
			suggestion)
	}

	return lo.Filter(hosts, func(h config.ResolvedHost, _ int) bool {
		return lo.Contains(wanted, h.Destination)
	}), nil
}
