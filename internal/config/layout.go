package config

// Layout says which remote host formats a Document declares hosts in.
type Layout int

const (
	// LayoutNeither means no remote hosts are configured.
	LayoutNeither Layout = iota
	// LayoutLegacy means only the flat remote_topgrades list has hosts.
	LayoutLegacy
	// LayoutCurrent means only [[remote.hosts]] has hosts.
	LayoutCurrent
	// LayoutBoth means both formats list hosts, which can't be resolved.
	LayoutBoth
)

func (l Layout) String() string {
	switch l {
	case LayoutLegacy:
		return "legacy"
	case LayoutCurrent:
		return "current"
	case LayoutBoth:
		return "both"
	default:
		return "none"
	}
}

// Classify reports the layout of d. Only declared hosts count: leftover
// legacy keys such as a stray remote_topgrade_path don't make a document
// legacy.
func (d Document) Classify() Layout {
	current := d.Remote != nil && len(d.Remote.Hosts) > 0
	legacy := d.Deprecated != nil && len(d.Deprecated.RemoteTopgrades) > 0

	switch {
	case current && legacy:
		return LayoutBoth
	case current:
		return LayoutCurrent
	case legacy:
		return LayoutLegacy
	default:
		return LayoutNeither
	}
}
