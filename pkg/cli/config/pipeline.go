package config

import (
	"log/slog"

	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

type Pipeline struct {
	path   string
	runner string
}

func (x *Pipeline) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "pipeline",
			Aliases:     []string{"p"},
			Usage:       "Path to pipeline definition file",
			Category:    "Pipeline",
			Value:       "shipgate.yml",
			Sources:     cli.EnvVars("SHIPGATE_PIPELINE"),
			Destination: &x.path,
		},
		&cli.StringFlag{
			Name:        "runner",
			Usage:       "Test runner binary (overrides the pipeline definition)",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("SHIPGATE_RUNNER"),
			Destination: &x.runner,
		},
	}
}

func (x *Pipeline) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("path", x.path),
		slog.Any("runner", x.runner),
	)
}

// Load reads the pipeline definition and applies command line overrides.
func (x *Pipeline) Load() (*model.Pipeline, error) {
	pipeline, err := model.LoadPipeline(x.path)
	if err != nil {
		return nil, err
	}

	if x.runner != "" {
		pipeline.Runner = x.runner
	}

	return pipeline, nil
}
