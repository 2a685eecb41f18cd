package wikitext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	testCases := []struct {
		name     string
		bbcode   bool
		html     bool
		expected string
		issue    Issue
	}{
		{name: "wiki", expected: "wiki"},
		{name: " Wiki ", expected: "wiki"},
		{name: "forum", expected: "forum"},
		{name: "forum", bbcode: true, expected: "forum+bbcode"},
		{name: "forum", bbcode: true, html: true, expected: "forum+bbcode+html"},
		{name: "forum", html: true, expected: "forum+html"},
		{name: "wiki", bbcode: true, issue: IssueInvalidDialect},
		{name: "markdown", issue: IssueInvalidDialect},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			d, err := ParseDialect(tc.name, tc.bbcode, tc.html)

			if tc.issue != IssueNone {
				var ce *ConfigError
				require.True(t, errors.As(err, &ce), "expected *ConfigError, got %T (%v)", err, err)
				require.Equal(t, tc.issue, ce.Issue)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, d.String())
		})
	}
}

func TestDialect_Validate(t *testing.T) {
	require.NoError(t, Wiki().Validate())
	require.NoError(t, Forum(true, true).Validate())
	require.Error(t, Dialect{}.Validate())
	require.Equal(t, "invalid", Dialect{}.String())
}
