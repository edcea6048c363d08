package clix

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("candidate", "", "")
	flags.StringSlice("option", nil, "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestParseCandidate(t *testing.T) {
	assert.Equal(t, "Jane Doe", ParseCandidate(newFlags(t, "--candidate", "Jane Doe")))
	assert.Equal(t, "Unknown Candidate", ParseCandidate(newFlags(t)))
	assert.Equal(t, "Unknown Candidate", ParseCandidate(newFlags(t, "--candidate", "   ")))
}

func TestParseOptions(t *testing.T) {
	options, err := ParseOptions(newFlags(t, "--option", "depth=full", "--option", "lang=en"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"depth": "full", "lang": "en"}, options)

	options, err = ParseOptions(newFlags(t))
	require.NoError(t, err)
	assert.Nil(t, options)

	_, err = ParseOptions(newFlags(t, "--option", "noequals"))
	require.Error(t, err)

	_, err = ParseOptions(newFlags(t, "--option", "=value"))
	require.Error(t, err)
}
