package model

import (
	"fmt"
	"time"

	"github.com/m-mizutani/shipgate/pkg/domain/types"
)

// Deployment is the write-once record of one deployment attempt.
type Deployment struct {
	ID        types.RunID        `bigquery:"id" json:"id" firestore:"id"`
	Timestamp time.Time          `bigquery:"timestamp" json:"timestamp" firestore:"timestamp"`
	Revision  RevisionSummary    `bigquery:"revision" json:"revision" firestore:"revision"`
	Outcome   TestOutcome        `bigquery:"outcome" json:"outcome" firestore:"outcome"`
	Suites    []SuiteResult      `bigquery:"suites" json:"suites" firestore:"suites"`
	Status    types.DeployStatus `bigquery:"status" json:"status" firestore:"status"`
}

// Summary renders the human readable audit line stored alongside the
// published artifacts, e.g.
// "2024-05-01T10:00:00Z main@a1b2c3d: 5/5 tests passed (success)"
func (x *Deployment) Summary() string {
	return fmt.Sprintf("%s %s@%s: %s (%s)",
		x.Timestamp.UTC().Format(time.RFC3339),
		x.Revision.Branch,
		x.Revision.ShortHash,
		x.Outcome.String(),
		x.Status,
	)
}

// DeploymentRawRecord is the BigQuery representation. Timestamp is
// flattened to unix microseconds for the TIMESTAMP column.
type DeploymentRawRecord struct {
	Deployment
	Timestamp int64 `bigquery:"timestamp" json:"timestamp"`
}
