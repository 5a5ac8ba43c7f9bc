package utils

import "context"

const (
	configurationFilePathContextKeyConstant = commandContextKey("configurationFilePath")
	pipelineFilePathContextKeyConstant      = commandContextKey("pipelineFilePath")
)

type commandContextKey string

// CommandContextAccessor manages values stored in command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath attaches the application configuration file path to the provided context.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	return accessor.withValue(parentContext, configurationFilePathContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath extracts the application configuration file path from the provided context.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	return accessor.stringValue(executionContext, configurationFilePathContextKeyConstant)
}

// WithPipelineFilePath attaches an explicit lunara.yml location to the provided context.
func (accessor CommandContextAccessor) WithPipelineFilePath(parentContext context.Context, pipelineFilePath string) context.Context {
	return accessor.withValue(parentContext, pipelineFilePathContextKeyConstant, pipelineFilePath)
}

// PipelineFilePath extracts the explicit lunara.yml location. Absent or empty means discovery.
func (accessor CommandContextAccessor) PipelineFilePath(executionContext context.Context) (string, bool) {
	pipelineFilePath, available := accessor.stringValue(executionContext, pipelineFilePathContextKeyConstant)
	if !available || len(pipelineFilePath) == 0 {
		return "", false
	}
	return pipelineFilePath, true
}

func (accessor CommandContextAccessor) withValue(parentContext context.Context, key commandContextKey, value string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, key, value)
}

func (accessor CommandContextAccessor) stringValue(executionContext context.Context, key commandContextKey) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	value, available := executionContext.Value(key).(string)
	return value, available
}
