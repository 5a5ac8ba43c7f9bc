package cli

import (
	"context"
	"strings"

	"github.com/temirov/lunara/internal/filesystem"
	"github.com/temirov/lunara/internal/pipeline"
	"github.com/temirov/lunara/internal/utils"
)

const (
	listSeparatorConstant = ", "
)

// pipelineConfigurationSource loads lunara.yml from an explicit --pipeline path when one is set,
// and by discovery in the working directory otherwise.
type pipelineConfigurationSource struct {
	loader                 *pipeline.Loader
	commandContextAccessor utils.CommandContextAccessor
}

func newPipelineConfigurationSource(fileSystem filesystem.FileSystem, workingDirectoryProvider filesystem.WorkingDirectoryProvider) pipelineConfigurationSource {
	return pipelineConfigurationSource{
		loader:                 pipeline.NewLoader(fileSystem, workingDirectoryProvider),
		commandContextAccessor: utils.NewCommandContextAccessor(),
	}
}

func (source pipelineConfigurationSource) load(executionContext context.Context, explicitPath string) (pipeline.Configuration, error) {
	if len(strings.TrimSpace(explicitPath)) > 0 {
		return source.loader.LoadFrom(explicitPath)
	}
	if contextPath, available := source.commandContextAccessor.PipelineFilePath(executionContext); available {
		return source.loader.LoadFrom(contextPath)
	}
	return source.loader.Load()
}

func joinLanguages(languages []pipeline.Language) string {
	names := make([]string, 0, len(languages))
	for _, language := range languages {
		names = append(names, string(language))
	}
	return strings.Join(names, listSeparatorConstant)
}

func joinGates(gates []pipeline.Gate) string {
	names := make([]string, 0, len(gates))
	for _, gate := range gates {
		names = append(names, string(gate))
	}
	return strings.Join(names, listSeparatorConstant)
}
