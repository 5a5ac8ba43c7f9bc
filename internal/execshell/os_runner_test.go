package execshell

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

const shellExecutableNameConstant = "sh"

func TestMergeEnvironmentAppendsSortedOverrides(t *testing.T) {
	merged := mergeEnvironment([]string{"PATH=/usr/bin"}, map[string]string{"GIT_OPTIONAL_LOCKS": "0", "LC_ALL": "C"})
	require.Equal(t, []string{"PATH=/usr/bin", "GIT_OPTIONAL_LOCKS=0", "LC_ALL=C"}, merged)
}

func TestOSCommandRunnerReportsExitCodes(t *testing.T) {
	if _, lookupError := exec.LookPath(shellExecutableNameConstant); lookupError != nil {
		t.Skip("sh is not available")
	}

	runner := NewOSCommandRunner()
	workingDirectory := t.TempDir()

	testCases := []struct {
		name             string
		script           string
		expectedExitCode int
		expectedOutput   string
		expectedError    string
	}{
		{name: "success", script: "printf \"$LUNARA_TEST_VALUE\"", expectedExitCode: 0, expectedOutput: "present"},
		{name: "non_zero_exit", script: "echo broken >&2; exit 3", expectedExitCode: 3, expectedError: "broken\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result, runError := runner.Run(context.Background(), ShellCommand{
				Name: CommandName(shellExecutableNameConstant),
				Details: CommandDetails{
					Arguments:            []string{"-c", testCase.script},
					WorkingDirectory:     workingDirectory,
					EnvironmentVariables: map[string]string{"LUNARA_TEST_VALUE": "present"},
				},
			})
			require.NoError(t, runError)
			require.Equal(t, testCase.expectedExitCode, result.ExitCode)
			require.Equal(t, testCase.expectedOutput, result.StandardOutput)
			require.Equal(t, testCase.expectedError, result.StandardError)
		})
	}
}

func TestOSCommandRunnerReportsSpawnFailures(t *testing.T) {
	runner := NewOSCommandRunner()
	_, runError := runner.Run(context.Background(), ShellCommand{Name: CommandName("lunara-missing-executable")})
	require.Error(t, runError)
}
