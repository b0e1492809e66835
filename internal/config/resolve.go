package config

import (
	stderrors "errors"
	"slices"
	"strings"

	"github.com/rileyhilliard/remotes/internal/errors"
	"github.com/samber/lo"
)

// ErrConflictingFormats is returned by Resolve when hosts are listed both in
// [[remote.hosts]] and in the deprecated remote_topgrades key.
// Check for it with errors.Is().
var ErrConflictingFormats = stderrors.New("remote hosts are declared in both the [remote] table and the deprecated remote_topgrades key")

// Resolve computes the effective settings for every configured remote host,
// in declaration order. It never picks a winner between the two formats:
// a document that lists hosts in both fails with ErrConflictingFormats.
func Resolve(doc Document) ([]ResolvedHost, error) {
	switch doc.Classify() {
	case LayoutBoth:
		return nil, errors.WrapWithCode(ErrConflictingFormats, errors.ErrConfig,
			"Remote hosts are configured twice",
			"Move the hosts from remote_topgrades into [[remote.hosts]] and delete remote_topgrades, ssh_arguments and remote_topgrade_path from the top level.")
	case LayoutCurrent:
		return resolveCurrent(doc.Remote), nil
	case LayoutLegacy:
		return resolveLegacy(doc.Deprecated), nil
	default:
		return []ResolvedHost{}, nil
	}
}

func resolveCurrent(remote *Remote) []ResolvedHost {
	return lo.Map(remote.Hosts, func(h Host, _ int) ResolvedHost {
		effective := Merge(remote.Common, h.Common)
		return newResolvedHost(h.Destination, lo.FromPtr(effective.SSHArguments), effective.TopgradePath)
	})
}

func resolveLegacy(dep *Deprecated) []ResolvedHost {
	args := SplitLegacyArguments(lo.FromPtr(dep.SSHArguments))
	return lo.Map(dep.RemoteTopgrades, func(dest string, _ int) ResolvedHost {
		return newResolvedHost(dest, args, dep.RemoteTopgradePath)
	})
}

// newResolvedHost copies args and path so results never share memory with
// the document or with each other.
func newResolvedHost(dest string, args []string, path *string) ResolvedHost {
	h := ResolvedHost{
		Destination:  dest,
		SSHArguments: slices.Clone(args),
	}
	if h.SSHArguments == nil {
		h.SSHArguments = []string{}
	}
	if path != nil {
		h.TopgradePath = lo.ToPtr(*path)
	}
	return h
}

// SplitLegacyArguments splits the old single-string ssh_arguments on
// whitespace. Quotes and escapes are not interpreted.
func SplitLegacyArguments(s string) []string {
	return strings.Fields(s)
}
