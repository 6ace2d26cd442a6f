package model

import (
	"fmt"
	"time"

	"github.com/m-mizutani/shipgate/pkg/domain/types"
)

// TestOutcome is the aggregate pass/fail tally of one test run. Counts
// only accumulate; they are never decremented.
type TestOutcome struct {
	Passed int `bigquery:"passed" json:"passed"`
	Failed int `bigquery:"failed" json:"failed"`
}

func (x TestOutcome) HasFailures() bool {
	return x.Failed > 0
}

func (x TestOutcome) Total() int {
	return x.Passed + x.Failed
}

// Merge accumulates the counts of another outcome into this one.
func (x *TestOutcome) Merge(other TestOutcome) {
	x.Passed += other.Passed
	x.Failed += other.Failed
}

func (x TestOutcome) String() string {
	return fmt.Sprintf("%d/%d tests passed", x.Passed, x.Total())
}

// SuiteResult is the per-suite breakdown kept for logging. The gate
// decision uses only the merged TestOutcome.
type SuiteResult struct {
	Suite    types.SuiteName `bigquery:"suite" json:"suite"`
	Outcome  TestOutcome     `bigquery:"outcome" json:"outcome"`
	Duration time.Duration   `bigquery:"-" json:"duration"`
}
