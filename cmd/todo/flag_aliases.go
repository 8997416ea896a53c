package main

import (
	"strings"

	"github.com/spf13/pflag"
)

// rootFlagSpellings maps alternate spellings to the flag they stand for.
var rootFlagSpellings = map[string]pflag.NormalizedName{
	"fmt":    "format",
	"output": "format",
	"conf":   "config",
}

// normalizeRootFlag accepts flag names in any case and resolves the
// alternate spellings in rootFlagSpellings.
func normalizeRootFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	name = strings.ToLower(name)
	if canonical, ok := rootFlagSpellings[name]; ok {
		return canonical
	}
	return pflag.NormalizedName(name)
}
