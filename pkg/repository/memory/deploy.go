package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
	"github.com/m-mizutani/shipgate/pkg/repository"
)

type record struct {
	deployment *model.Deployment
}

type deployRepository struct {
	mu          sync.RWMutex
	deployments map[string]*record
}

func (r *deployRepository) PutDeployment(ctx context.Context, deployment *model.Deployment) error {
	if deployment.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "deployment ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.deployments[string(deployment.ID)] = &record{
		deployment: copyDeployment(deployment),
	}

	return nil
}

func (r *deployRepository) GetDeployment(ctx context.Context, id types.RunID) (*model.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.deployments[string(id)]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "deployment not found",
			goerr.V("id", id),
		)
	}

	return copyDeployment(data.deployment), nil
}

func (r *deployRepository) ListDeployments(ctx context.Context, limit int) ([]*model.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deployments := make([]*model.Deployment, 0, len(r.deployments))
	for _, data := range r.deployments {
		deployments = append(deployments, copyDeployment(data.deployment))
	}

	// Newest first, matching the Firestore query ordering
	sort.Slice(deployments, func(i, j int) bool {
		return deployments[i].Timestamp.After(deployments[j].Timestamp)
	})

	if limit > 0 && len(deployments) > limit {
		deployments = deployments[:limit]
	}

	return deployments, nil
}

func (r *deployRepository) UpdateDeploymentStatus(ctx context.Context, id types.RunID, status types.DeployStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.deployments[string(id)]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "deployment not found",
			goerr.V("id", id),
		)
	}

	data.deployment.Status = status

	return nil
}

// Helper function for deep copy

func copyDeployment(deployment *model.Deployment) *model.Deployment {
	if deployment == nil {
		return nil
	}
	cpy := *deployment

	if deployment.Suites != nil {
		cpy.Suites = make([]model.SuiteResult, len(deployment.Suites))
		copy(cpy.Suites, deployment.Suites)
	}

	return &cpy
}
