package config

import "github.com/samber/lo"

// Merge layers override on top of base. Each field is taken from override
// when it is set there, otherwise from base.
func Merge(base, override Common) Common {
	return Common{
		SSHArguments: overrideField(base.SSHArguments, override.SSHArguments),
		TopgradePath: overrideField(base.TopgradePath, override.TopgradePath),
	}
}

func overrideField[T any](base, override *T) *T {
	field, _ := lo.Coalesce(override, base)
	return field
}
