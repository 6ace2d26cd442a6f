package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
)

func TestDeploymentSummary(t *testing.T) {
	deployment := &model.Deployment{
		ID:        types.RunID("run-1"),
		Timestamp: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Revision: model.RevisionSummary{
			CommitSHA: "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678",
			ShortHash: "a1b2c3d",
			Branch:    "main",
		},
		Outcome: model.TestOutcome{Passed: 5},
		Status:  types.DeployStatusSuccess,
	}

	gt.V(t, deployment.Summary()).Equal("2024-05-01T10:00:00Z main@a1b2c3d: 5/5 tests passed (success)")
}

func TestRevisionSummaryValidate(t *testing.T) {
	t.Run("valid revision", func(t *testing.T) {
		rev := model.RevisionSummary{
			CommitSHA: "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678",
			ShortHash: "a1b2c3d",
			Branch:    "main",
		}
		gt.NoError(t, rev.Validate())
	})

	t.Run("missing short hash", func(t *testing.T) {
		rev := model.RevisionSummary{Branch: "main"}
		gt.Error(t, rev.Validate())
	})

	t.Run("missing branch", func(t *testing.T) {
		rev := model.RevisionSummary{ShortHash: "a1b2c3d"}
		gt.Error(t, rev.Validate())
	})
}
