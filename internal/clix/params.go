package clix

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ParseCandidate reads the --candidate flag with the conventional default.
func ParseCandidate(flags *pflag.FlagSet) string {
	candidate, _ := flags.GetString("candidate")
	if strings.TrimSpace(candidate) == "" {
		return "Unknown Candidate"
	}
	return candidate
}

// ParseOptions turns repeated --option key=value flags into the opaque
// options map echoed back in report metadata.
func ParseOptions(flags *pflag.FlagSet) (map[string]any, error) {
	raw, _ := flags.GetStringSlice("option")
	if len(raw) == 0 {
		return nil, nil
	}

	options := make(map[string]any, len(raw))
	for _, pair := range raw {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("invalid option %q, expected key=value", pair)
		}
		options[key] = strings.TrimSpace(value)
	}
	return options, nil
}
