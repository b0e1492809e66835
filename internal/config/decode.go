package config

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rileyhilliard/remotes/internal/errors"
)

const remoteKey = "remote"

// legacyKeys are the top-level keys of the deprecated flat layout.
var legacyKeys = []string{"remote_topgrades", "ssh_arguments", "remote_topgrade_path"}

// Decode extracts the remote configuration from a generic parsed document,
// such as the map produced by a TOML decoder. Keys unrelated to remote hosts
// are ignored.
func Decode(raw map[string]any) (Document, error) {
	var doc Document

	if section, ok := raw[remoteKey]; ok && section != nil {
		remote := &Remote{}
		if err := decodeInto(section, remote); err != nil {
			return Document{}, errors.WrapWithCode(err, errors.ErrConfig,
				"Invalid [remote] section",
				"ssh_arguments must be a list of strings and each [[remote.hosts]] entry needs a destination.")
		}
		if !hasHostsKey(section) {
			return Document{}, errors.New(errors.ErrConfig,
				"The [remote] table has no hosts",
				"Add at least one [[remote.hosts]] entry, or set hosts = [] to configure none.")
		}
		if i := missingDestination(section); i >= 0 {
			return Document{}, errors.New(errors.ErrConfig,
				fmt.Sprintf("Remote host #%d has no destination", i+1),
				"Add a destination to every [[remote.hosts]] entry, e.g. destination = \"user@host\".")
		}
		doc.Remote = remote
	}

	if hasAnyKey(raw, legacyKeys) {
		legacy := make(map[string]any, len(legacyKeys))
		for _, k := range legacyKeys {
			if v, ok := raw[k]; ok {
				legacy[k] = v
			}
		}
		dep := &Deprecated{}
		if err := decodeInto(legacy, dep); err != nil {
			return Document{}, errors.WrapWithCode(err, errors.ErrConfig,
				"Invalid deprecated remote settings",
				"remote_topgrades must be a list, ssh_arguments and remote_topgrade_path must be strings.")
		}
		doc.Deprecated = dep
	}

	return doc, nil
}

func decodeInto(input, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
		// TOML keys are case-sensitive.
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// hasHostsKey reports whether the decoded [remote] table declares hosts,
// even as an empty list.
func hasHostsKey(section any) bool {
	table, ok := section.(map[string]any)
	if !ok {
		return false
	}
	_, ok = table["hosts"]
	return ok
}

// missingDestination returns the index of the first host without a
// destination key, or -1. An empty destination string is allowed.
func missingDestination(section any) int {
	table, ok := section.(map[string]any)
	if !ok {
		return -1
	}
	hosts, ok := table["hosts"].([]any)
	if !ok {
		return -1
	}
	for i, h := range hosts {
		entry, ok := h.(map[string]any)
		if !ok {
			continue
		}
		if _, ok := entry["destination"]; !ok {
			return i
		}
	}
	return -1
}

func hasAnyKey(m map[string]any, keys []string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}
