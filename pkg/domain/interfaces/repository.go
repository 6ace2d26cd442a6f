package interfaces

import (
	"context"

	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
)

//go:generate moq -out ../mock/deploy_repository_mock.go -pkg mock . DeployRepository

// DeployRepository stores deployment records at the remote audit
// location.
type DeployRepository interface {
	PutDeployment(ctx context.Context, deployment *model.Deployment) error
	GetDeployment(ctx context.Context, id types.RunID) (*model.Deployment, error)
	ListDeployments(ctx context.Context, limit int) ([]*model.Deployment, error)
	UpdateDeploymentStatus(ctx context.Context, id types.RunID, status types.DeployStatus) error
}
