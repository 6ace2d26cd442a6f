package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/model/mocharep"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
	"github.com/m-mizutani/shipgate/pkg/utils/logging"
	"github.com/m-mizutani/shipgate/pkg/utils/safe"
)

// RunSuites executes every configured suite with the runner binary and
// returns the merged tally. All suites run even after failures; only a
// suite that fails to load aborts the run. Failing cases never surface
// as an error, they are data in the returned TestOutcome.
func (x *UseCase) RunSuites(ctx context.Context, pipeline *model.Pipeline) (*model.TestOutcome, []model.SuiteResult, error) {
	var outcome model.TestOutcome
	results := make([]model.SuiteResult, 0, len(pipeline.Suites))

	for _, suite := range pipeline.Suites {
		result, err := x.runSuite(ctx, pipeline.Runner, suite)
		if err != nil {
			return nil, nil, err
		}

		outcome.Merge(result.Outcome)
		results = append(results, *result)

		logging.From(ctx).Info("suite finished",
			slog.String("suite", suite),
			slog.Int("passed", result.Outcome.Passed),
			slog.Int("failed", result.Outcome.Failed),
			slog.Duration("elapsed", result.Duration),
		)
	}

	return &outcome, results, nil
}

func (x *UseCase) runSuite(ctx context.Context, runner, suite string) (*model.SuiteResult, error) {
	tmpReport, err := os.CreateTemp("", "shipgate_report.*.json")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create temp file for runner report")
	}
	defer safe.Remove(tmpReport.Name())

	if err := tmpReport.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to close temp file for runner report")
	}

	startedAt := time.Now()

	// The runner exits non-zero when any case fails, so its exit code
	// alone cannot distinguish "tests failed" from "suite did not
	// load". The report decides: parseable report wins, no report
	// means the suite never ran.
	runErr := x.clients.CommandRunner().Run(ctx, []string{
		runner,
		"--reporter", "json",
		"--reporter-option", "output=" + tmpReport.Name(),
		suite,
	})

	var report mocharep.Report
	if err := unmarshalFile(tmpReport.Name(), &report); err != nil {
		return nil, goerr.Wrap(types.ErrSuiteLoad, "runner produced no parseable report",
			goerr.V("suite", suite),
			goerr.V("runner", runner),
			goerr.V("runError", runErr),
		)
	}

	if err := report.Validate(); err != nil {
		return nil, goerr.Wrap(err, "broken runner report", goerr.V("suite", suite))
	}

	return &model.SuiteResult{
		Suite: types.SuiteName(suite),
		Outcome: model.TestOutcome{
			Passed: report.Stats.Passes,
			Failed: report.Stats.Failures,
		},
		Duration: time.Since(startedAt),
	}, nil
}

func unmarshalFile(path string, v any) error {
	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		return goerr.Wrap(err, "failed to open file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	if err := json.NewDecoder(fd).Decode(v); err != nil {
		return goerr.Wrap(err, "failed to decode json", goerr.V("path", path))
	}

	return nil
}
