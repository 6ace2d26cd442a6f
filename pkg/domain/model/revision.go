package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
)

// RevisionSummary identifies the source revision of a deployment
// attempt. It is fetched once per run and never mutated afterwards.
type RevisionSummary struct {
	CommitSHA types.CommitSHA  `bigquery:"commit_sha" json:"commit_sha"`
	ShortHash string           `bigquery:"short_hash" json:"short_hash"`
	Branch    types.BranchName `bigquery:"branch" json:"branch"`
}

func (x *RevisionSummary) Validate() error {
	if x.ShortHash == "" {
		return goerr.Wrap(types.ErrValidationFailed, "short hash is empty")
	}
	if x.Branch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch name is empty")
	}
	return nil
}
