// Package mocharep models the JSON document emitted by mocha's json
// reporter. Any runner that honors the same contract can be used as
// the test runner binary.
package mocharep

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
)

type Report struct {
	Stats    Stats  `json:"stats"`
	Tests    []Case `json:"tests"`
	Passes   []Case `json:"passes"`
	Failures []Case `json:"failures"`
	Pending  []Case `json:"pending"`
}

type Stats struct {
	Suites   int    `json:"suites"`
	Tests    int    `json:"tests"`
	Passes   int    `json:"passes"`
	Pending  int    `json:"pending"`
	Failures int    `json:"failures"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration int64  `json:"duration"`
}

type Case struct {
	Title     string     `json:"title"`
	FullTitle string     `json:"fullTitle"`
	File      string     `json:"file"`
	Duration  int64      `json:"duration"`
	Err       *CaseError `json:"err,omitempty"`
}

type CaseError struct {
	Message string `json:"message"`
	Stack   string `json:"stack"`
}

// Validate checks the internal consistency of the report. A report
// whose counts do not add up indicates a broken runner, which is a
// suite load problem rather than a test failure.
func (x *Report) Validate() error {
	if x.Stats.Tests < 0 || x.Stats.Passes < 0 || x.Stats.Failures < 0 || x.Stats.Pending < 0 {
		return goerr.Wrap(types.ErrValidationFailed, "negative count in runner report",
			goerr.V("stats", x.Stats),
		)
	}

	if x.Stats.Passes+x.Stats.Failures+x.Stats.Pending != x.Stats.Tests {
		return goerr.Wrap(types.ErrValidationFailed, "runner report counts do not add up",
			goerr.V("tests", x.Stats.Tests),
			goerr.V("passes", x.Stats.Passes),
			goerr.V("failures", x.Stats.Failures),
			goerr.V("pending", x.Stats.Pending),
		)
	}

	return nil
}
