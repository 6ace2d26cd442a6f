package model

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// Pipeline is the project-side configuration file (shipgate.yml). All
// commands are argv arrays executed as-is, no shell interpretation.
type Pipeline struct {
	// Runner is the path to the test runner binary. The runner must
	// support mocha's `--reporter json` output contract.
	Runner string `yaml:"runner"`

	// Install and Compile are the toolchain steps executed before the
	// test run. Either may be empty.
	Install []string `yaml:"install"`
	Compile []string `yaml:"compile"`

	// Suites are the test suite locations passed to the runner one by
	// one. All suites run even if earlier ones fail.
	Suites []string `yaml:"suites"`

	// Publish is the command that publishes artifacts when the gate
	// approves.
	Publish []string `yaml:"publish"`

	// Artifacts are local files uploaded to the artifact bucket after a
	// successful publish, if a bucket is configured.
	Artifacts []string `yaml:"artifacts"`
}

func LoadPipeline(path string) (*Pipeline, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read pipeline file", goerr.V("path", path))
	}

	var pipeline Pipeline
	if err := yaml.Unmarshal(raw, &pipeline); err != nil {
		return nil, goerr.Wrap(err, "failed to parse pipeline file", goerr.V("path", path))
	}

	if pipeline.Runner == "" {
		pipeline.Runner = "mocha"
	}

	if err := pipeline.Validate(); err != nil {
		return nil, err
	}

	return &pipeline, nil
}

func (x *Pipeline) Validate() error {
	if len(x.Suites) == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "no test suites configured")
	}
	for _, cmd := range [][]string{x.Install, x.Compile, x.Publish} {
		if len(cmd) == 1 && cmd[0] == "" {
			return goerr.Wrap(types.ErrValidationFailed, "command has empty argv")
		}
	}
	return nil
}

func (x *Pipeline) SuiteNames() []types.SuiteName {
	names := make([]types.SuiteName, len(x.Suites))
	for i, s := range x.Suites {
		names[i] = types.SuiteName(s)
	}
	return names
}
