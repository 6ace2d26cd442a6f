package interfaces

import (
	"context"

	"github.com/m-mizutani/shipgate/pkg/domain/model"
)

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

type UseCase interface {
	RunPipeline(ctx context.Context, input *model.RunPipelineInput) (*model.Deployment, error)
	ListDeployments(ctx context.Context, limit int) ([]*model.Deployment, error)
}
