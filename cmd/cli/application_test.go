package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/lunara/cmd/cli"
	"github.com/temirov/lunara/internal/execshell"
	"github.com/temirov/lunara/internal/pipeline"
)

const (
	testValidPipelineContentConstant   = "pipeline:\n  languages: [rust]\n  gates: [build, lint, test]\npolicies:\n  protected_branches: [main]\n"
	testInvalidPipelineContentConstant = "pipeline:\n  languages: []\n  gates: [build]\n"
	testUnknownGatePipelineConstant    = "pipeline:\n  languages: [rust]\n  gates: [deploy]\n"
	testVersionConstant                = "9.9.9"
	testFilePermissionsConstant        = 0o644
	testDirectoryPermissionsConstant   = 0o755
)

type stubGitExecutor struct {
	outputs map[string]string
}

func (executor stubGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	output, found := executor.outputs[strings.Join(details.Arguments, " ")]
	if !found {
		return execshell.ExecutionResult{}, errors.New("unexpected git invocation")
	}
	return execshell.ExecutionResult{StandardOutput: output}, nil
}

func writeTestFile(testInstance *testing.T, path string, content string) {
	testInstance.Helper()
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(path), testDirectoryPermissionsConstant))
	require.NoError(testInstance, os.WriteFile(path, []byte(content), testFilePermissionsConstant))
}

func fixedWorkingDirectory(directory string) func() (string, error) {
	return func() (string, error) {
		return directory, nil
	}
}

func TestApplicationExitCodes(testInstance *testing.T) {
	pipelineDirectory := testInstance.TempDir()
	validPipelinePath := filepath.Join(pipelineDirectory, pipeline.PrimaryFileName)
	writeTestFile(testInstance, validPipelinePath, testValidPipelineContentConstant)

	testCases := []struct {
		name             string
		arguments        []string
		expectedExitCode int
	}{
		{name: "help_without_arguments", arguments: []string{}, expectedExitCode: cli.ExitCodeSuccess},
		{name: "version", arguments: []string{"version"}, expectedExitCode: cli.ExitCodeSuccess},
		{name: "unknown_command", arguments: []string{"wat"}, expectedExitCode: cli.ExitCodeUsage},
		{name: "unknown_flag", arguments: []string{"--bogus"}, expectedExitCode: cli.ExitCodeUsage},
		{name: "unexpected_argument", arguments: []string{"version", "extra"}, expectedExitCode: cli.ExitCodeUsage},
		{name: "unsupported_log_level", arguments: []string{"--log-level", "loud", "version"}, expectedExitCode: cli.ExitCodeUsage},
		{name: "run_not_implemented", arguments: []string{"run"}, expectedExitCode: cli.ExitCodeError},
		{name: "check_reports_failure", arguments: []string{"--pipeline", validPipelinePath, "check"}, expectedExitCode: cli.ExitCodeChecksFailed},
		{name: "check_without_configuration", arguments: []string{"--pipeline", filepath.Join(pipelineDirectory, "missing.yml"), "check"}, expectedExitCode: cli.ExitCodeError},
		{name: "config_validate", arguments: []string{"config", "validate", validPipelinePath}, expectedExitCode: cli.ExitCodeSuccess},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			application := cli.NewApplication()
			application.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})

			executionError := application.ExecuteWithArguments(testCase.arguments)
			require.Equal(testInstance, testCase.expectedExitCode, cli.ExitCodeFor(executionError), "error: %v", executionError)
		})
	}
}

func TestStatusCommandReportsRepositoryState(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	writeTestFile(testInstance, filepath.Join(repositoryRoot, ".git", "HEAD"), "ref: refs/heads/main\n")
	writeTestFile(testInstance, filepath.Join(repositoryRoot, pipeline.PrimaryFileName), testValidPipelineContentConstant)

	builder := cli.StatusCommandBuilder{
		ConfigurationProvider: func() cli.StatusConfiguration {
			return cli.StatusConfiguration{PreciseAheadBehind: true}
		},
		VersionResolver: func(context.Context) string {
			return testVersionConstant
		},
		GitExecutor: stubGitExecutor{outputs: map[string]string{
			"status --porcelain --branch":                      "## main...origin/main [ahead 2, behind 1]\n M a\nM  b\n?? c\n",
			"rev-list --left-right --count HEAD...@{upstream}": "5\t7\n",
		}},
		WorkingDirectoryProvider: fixedWorkingDirectory(repositoryRoot),
	}

	command := builder.Build()
	output := &bytes.Buffer{}
	command.SetOut(output)
	command.SetArgs([]string{})
	command.SetContext(context.Background())

	require.NoError(testInstance, command.Execute())

	expectedOutput := strings.Join([]string{
		"lunara " + testVersionConstant,
		"config: version 1; languages: rust; gates: build, lint, test",
		"repository: " + repositoryRoot,
		"branch: main (protected)",
		"upstream: origin/main, ahead 5, behind 7",
		"changes: 1 staged, 1 unstaged, 1 untracked",
	}, "\n") + "\n"
	require.Equal(testInstance, expectedOutput, output.String())
}

func TestStatusCommandReportsMissingConfiguration(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	writeTestFile(testInstance, filepath.Join(repositoryRoot, ".git", "HEAD"), "0123456789abcdef0123456789abcdef01234567\n")

	builder := cli.StatusCommandBuilder{
		GitExecutor: stubGitExecutor{outputs: map[string]string{
			"status --porcelain --branch": "?? notes.txt\n",
		}},
		WorkingDirectoryProvider: fixedWorkingDirectory(repositoryRoot),
	}

	command := builder.Build()
	output := &bytes.Buffer{}
	command.SetOut(output)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{})
	command.SetContext(context.Background())

	executionError := command.Execute()
	require.Error(testInstance, executionError)
	require.ErrorIs(testInstance, executionError, pipeline.ErrConfigurationNotFound)
	require.Equal(testInstance, cli.ExitCodeError, cli.ExitCodeFor(executionError))
	require.Contains(testInstance, output.String(), "config: not loaded (not_found)")
	require.Contains(testInstance, output.String(), "branch: DETACHED@0123456\n")
	require.Contains(testInstance, output.String(), "upstream: none\n")
	require.Contains(testInstance, output.String(), "changes: 0 staged, 0 unstaged, 1 untracked\n")
}

func TestInitCommandWritesDefaultConfiguration(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	builder := cli.InitCommandBuilder{WorkingDirectoryProvider: fixedWorkingDirectory(workingDirectory)}

	command := builder.Build()
	output := &bytes.Buffer{}
	command.SetOut(output)
	command.SetArgs([]string{})
	require.NoError(testInstance, command.Execute())
	require.Equal(testInstance, "created lunara.yml\n", output.String())

	loadedConfiguration, loadError := pipeline.LoadFrom(filepath.Join(workingDirectory, pipeline.PrimaryFileName))
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, pipeline.DefaultConfiguration(), loadedConfiguration)

	repeatedCommand := builder.Build()
	repeatedCommand.SetOut(&bytes.Buffer{})
	repeatedCommand.SetArgs([]string{})
	repeatedError := repeatedCommand.Execute()
	require.ErrorIs(testInstance, repeatedError, cli.ErrConfigurationExists)
	require.Equal(testInstance, cli.ExitCodeError, cli.ExitCodeFor(repeatedError))
}

func TestConfigValidateCommand(testInstance *testing.T) {
	testCases := []struct {
		name             string
		content          string
		expectedOutput   string
		expectedFragment string
	}{
		{
			name:           "valid",
			content:        testValidPipelineContentConstant,
			expectedOutput: "config valid: version 1; languages: rust; gates: build, lint, test\n",
		},
		{
			name:             "empty_languages",
			content:          testInvalidPipelineContentConstant,
			expectedFragment: "config invalid error: invalid config: pipeline.languages must not be empty",
		},
		{
			name:             "unknown_gate",
			content:          testUnknownGatePipelineConstant,
			expectedFragment: "config parse error",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			workingDirectory := testInstance.TempDir()
			writeTestFile(testInstance, filepath.Join(workingDirectory, pipeline.AlternateFileName), testCase.content)

			command := cli.ConfigCommandBuilder{WorkingDirectoryProvider: fixedWorkingDirectory(workingDirectory)}.Build()
			output := &bytes.Buffer{}
			command.SetOut(output)
			command.SetArgs([]string{"validate"})
			command.SetContext(context.Background())

			executionError := command.Execute()
			if len(testCase.expectedFragment) == 0 {
				require.NoError(testInstance, executionError)
				require.Equal(testInstance, testCase.expectedOutput, output.String())
				return
			}
			require.Error(testInstance, executionError)
			require.Contains(testInstance, executionError.Error(), testCase.expectedFragment)
		})
	}
}
