package config

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want Layout
	}{
		{
			name: "empty document",
			want: LayoutNeither,
		},
		{
			name: "remote table without hosts",
			doc:  Document{Remote: &Remote{Common: Common{TopgradePath: lo.ToPtr("topgrade")}}},
			want: LayoutNeither,
		},
		{
			name: "stray legacy path only",
			doc:  Document{Deprecated: &Deprecated{RemoteTopgradePath: lo.ToPtr(".cargo/bin/topgrade")}},
			want: LayoutNeither,
		},
		{
			name: "legacy hosts",
			doc:  Document{Deprecated: &Deprecated{RemoteTopgrades: []string{"pi"}}},
			want: LayoutLegacy,
		},
		{
			name: "current hosts",
			doc:  Document{Remote: &Remote{Hosts: []Host{{Destination: "pi"}}}},
			want: LayoutCurrent,
		},
		{
			name: "current hosts with leftover legacy settings",
			doc: Document{
				Remote:     &Remote{Hosts: []Host{{Destination: "pi"}}},
				Deprecated: &Deprecated{SSHArguments: lo.ToPtr("-o ConnectTimeout=2")},
			},
			want: LayoutCurrent,
		},
		{
			name: "legacy hosts with empty remote table",
			doc: Document{
				Remote:     &Remote{},
				Deprecated: &Deprecated{RemoteTopgrades: []string{"pi"}},
			},
			want: LayoutLegacy,
		},
		{
			name: "hosts in both",
			doc: Document{
				Remote:     &Remote{Hosts: []Host{{Destination: "toothless"}}},
				Deprecated: &Deprecated{RemoteTopgrades: []string{"toothless", "pi"}},
			},
			want: LayoutBoth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.Classify())
		})
	}
}

func TestLayoutString(t *testing.T) {
	assert.Equal(t, "none", LayoutNeither.String())
	assert.Equal(t, "legacy", LayoutLegacy.String())
	assert.Equal(t, "current", LayoutCurrent.String())
	assert.Equal(t, "both", LayoutBoth.String())
}
