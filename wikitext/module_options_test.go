package wikitext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseModuleOptions(t *testing.T) {
	opts := ParseModuleOptions("limit=10| Tier = Vault |showall|=5||limit=20")

	require.Equal(t, ModuleOptions{
		"limit":   "20",
		"tier":    "Vault",
		"showall": "",
	}, opts)

	require.Equal(t, 20, opts.Int("limit", 5))
	require.Equal(t, 5, opts.Int("tier", 5))
	require.Equal(t, 5, opts.Int("missing", 5))

	require.Equal(t, "Vault", opts.String("TIER", "x"))
	require.Equal(t, "x", opts.String("showall", "x"))

	require.True(t, opts.Has("showall"))
	require.False(t, opts.Has("missing"))

	require.True(t, opts.Bool("showall"))
	require.False(t, opts.Bool("tier"))
	require.False(t, opts.Bool("missing"))
}

func TestParseModuleOptions_Empty(t *testing.T) {
	opts := ParseModuleOptions("")
	require.NotNil(t, opts)
	require.Empty(t, opts)
}
