package gitrepo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/lunara/internal/gitrepo"
)

const (
	testTrackingHeaderConstant = "## main...origin/main [ahead 2, behind 1]"
)

func TestParseStatus(testInstance *testing.T) {
	testCases := []struct {
		name            string
		statusText      string
		expectedSummary gitrepo.StatusSummary
	}{
		{
			name:       "tracking_header_with_counts",
			statusText: strings.Join([]string{testTrackingHeaderConstant, " M a", "M  b", "?? c"}, "\n") + "\n",
			expectedSummary: gitrepo.StatusSummary{
				Upstream: gitrepo.Upstream{Name: "origin/main", Configured: true, Ahead: 2, Behind: 1},
				Counts:   gitrepo.StatusCounts{Staged: 1, Unstaged: 1, Untracked: 1},
			},
		},
		{
			name:       "no_header",
			statusText: " M a\n?? b\n",
			expectedSummary: gitrepo.StatusSummary{
				Counts: gitrepo.StatusCounts{Unstaged: 1, Untracked: 1},
			},
		},
		{
			name:       "header_without_upstream",
			statusText: "## feature\nA  new.go\n",
			expectedSummary: gitrepo.StatusSummary{
				Counts: gitrepo.StatusCounts{Staged: 1},
			},
		},
		{
			name:       "upstream_without_bracket_section",
			statusText: "## main...origin/main\n",
			expectedSummary: gitrepo.StatusSummary{
				Upstream: gitrepo.Upstream{Name: "origin/main", Configured: true},
			},
		},
		{
			name:       "behind_only",
			statusText: "## main...origin/main [behind 4]\n",
			expectedSummary: gitrepo.StatusSummary{
				Upstream: gitrepo.Upstream{Name: "origin/main", Configured: true, Behind: 4},
			},
		},
		{
			name:       "unparsable_counts_default_to_zero",
			statusText: "## main...origin/main [ahead many, behind 3]\n",
			expectedSummary: gitrepo.StatusSummary{
				Upstream: gitrepo.Upstream{Name: "origin/main", Configured: true, Behind: 3},
			},
		},
		{
			name:       "first_header_wins",
			statusText: "## main...origin/main [ahead 1]\n## other...upstream/other [behind 9]\n",
			expectedSummary: gitrepo.StatusSummary{
				Upstream: gitrepo.Upstream{Name: "origin/main", Configured: true, Ahead: 1},
			},
		},
		{
			name:       "both_columns_count_twice",
			statusText: "MM both.go\nRM renamed.go -> moved.go\n",
			expectedSummary: gitrepo.StatusSummary{
				Counts: gitrepo.StatusCounts{Staged: 2, Unstaged: 2},
			},
		},
		{
			name:            "short_lines_ignored",
			statusText:      "M\n M\n\n",
			expectedSummary: gitrepo.StatusSummary{},
		},
		{
			name:       "carriage_returns_tolerated",
			statusText: "## main...origin/main [ahead 3]\r\n?? c\r\n",
			expectedSummary: gitrepo.StatusSummary{
				Upstream: gitrepo.Upstream{Name: "origin/main", Configured: true, Ahead: 3},
				Counts:   gitrepo.StatusCounts{Untracked: 1},
			},
		},
		{
			name:            "empty_input",
			statusText:      "",
			expectedSummary: gitrepo.StatusSummary{},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedSummary, gitrepo.ParseStatus(testCase.statusText))
		})
	}
}

func TestParseStatusCountsAreOrderIndependent(testInstance *testing.T) {
	fileLines := []string{" M a", "M  b", "?? c", "MM d", "A  e", " D f", "?? g"}
	expectedCounts := gitrepo.ParseStatus(testTrackingHeaderConstant + "\n" + strings.Join(fileLines, "\n")).Counts

	permutations := [][]string{
		{"?? g", " D f", "A  e", "MM d", "?? c", "M  b", " M a"},
		{"MM d", " M a", "?? g", "M  b", " D f", "?? c", "A  e"},
		{"A  e", "?? c", " M a", " D f", "MM d", "?? g", "M  b"},
	}

	for _, permutedLines := range permutations {
		statusText := strings.Join(permutedLines, "\n") + "\n" + testTrackingHeaderConstant
		require.Equal(testInstance, expectedCounts, gitrepo.ParseStatus(statusText).Counts)
	}
	require.Equal(testInstance, gitrepo.StatusCounts{Staged: 3, Unstaged: 3, Untracked: 2}, expectedCounts)
}
