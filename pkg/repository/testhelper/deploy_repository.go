// Package testhelper provides a conformance suite shared by all
// DeployRepository implementations.
package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipgate/pkg/domain/interfaces"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
	"github.com/m-mizutani/shipgate/pkg/repository"
)

func newDeployment(status types.DeployStatus, at time.Time) *model.Deployment {
	return &model.Deployment{
		ID:        types.RunID(uuid.NewString()),
		Timestamp: at,
		Revision: model.RevisionSummary{
			CommitSHA: types.CommitSHA(fmt.Sprintf("%040d", at.UnixNano()%1000)),
			ShortHash: uuid.NewString()[:7],
			Branch:    "main",
		},
		Outcome: model.TestOutcome{Passed: 5},
		Status:  status,
	}
}

// TestDeployRepository runs the conformance suite against the given
// repository factory.
func TestDeployRepository(t *testing.T, newRepo func(t *testing.T) interfaces.DeployRepository) {
	ctx := context.Background()

	t.Run("put and get roundtrip", func(t *testing.T) {
		repo := newRepo(t)
		deployment := newDeployment(types.DeployStatusSuccess, time.Now().UTC().Truncate(time.Microsecond))

		gt.NoError(t, repo.PutDeployment(ctx, deployment))

		got := gt.R1(repo.GetDeployment(ctx, deployment.ID)).NoError(t)
		gt.V(t, got.ID).Equal(deployment.ID)
		gt.V(t, got.Revision.Branch).Equal(deployment.Revision.Branch)
		gt.V(t, got.Outcome.Passed).Equal(5)
		gt.V(t, got.Status).Equal(types.DeployStatusSuccess)
	})

	t.Run("get of unknown ID returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.GetDeployment(ctx, types.RunID(uuid.NewString()))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("put with empty ID is rejected", func(t *testing.T) {
		repo := newRepo(t)
		err := repo.PutDeployment(ctx, &model.Deployment{})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	})

	t.Run("put is idempotent per run ID", func(t *testing.T) {
		repo := newRepo(t)
		deployment := newDeployment(types.DeployStatusDegraded, time.Now().UTC().Truncate(time.Microsecond))

		gt.NoError(t, repo.PutDeployment(ctx, deployment))

		// Replaying the record write must overwrite, not duplicate
		deployment.Status = types.DeployStatusSuccess
		gt.NoError(t, repo.PutDeployment(ctx, deployment))

		got := gt.R1(repo.GetDeployment(ctx, deployment.ID)).NoError(t)
		gt.V(t, got.Status).Equal(types.DeployStatusSuccess)
	})

	t.Run("list returns newest first with limit", func(t *testing.T) {
		repo := newRepo(t)
		base := time.Now().UTC().Truncate(time.Microsecond)

		older := newDeployment(types.DeployStatusSuccess, base.Add(-2*time.Hour))
		newer := newDeployment(types.DeployStatusSuccess, base.Add(-1*time.Hour))
		newest := newDeployment(types.DeployStatusSkipped, base)

		gt.NoError(t, repo.PutDeployment(ctx, older))
		gt.NoError(t, repo.PutDeployment(ctx, newer))
		gt.NoError(t, repo.PutDeployment(ctx, newest))

		deployments := gt.R1(repo.ListDeployments(ctx, 2)).NoError(t)
		gt.A(t, deployments).Length(2)
		gt.V(t, deployments[0].ID).Equal(newest.ID)
		gt.V(t, deployments[1].ID).Equal(newer.ID)
	})

	t.Run("update status", func(t *testing.T) {
		repo := newRepo(t)
		deployment := newDeployment(types.DeployStatusDegraded, time.Now().UTC().Truncate(time.Microsecond))

		gt.NoError(t, repo.PutDeployment(ctx, deployment))
		gt.NoError(t, repo.UpdateDeploymentStatus(ctx, deployment.ID, types.DeployStatusSuccess))

		got := gt.R1(repo.GetDeployment(ctx, deployment.ID)).NoError(t)
		gt.V(t, got.Status).Equal(types.DeployStatusSuccess)
	})

	t.Run("update status of unknown ID returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		err := repo.UpdateDeploymentStatus(ctx, types.RunID(uuid.NewString()), types.DeployStatusSuccess)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})
}
