package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
	"github.com/m-mizutani/shipgate/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionDeployment = "deployment"
)

type deployRepository struct {
	client *firestore.Client
}

func (r *deployRepository) PutDeployment(ctx context.Context, deployment *model.Deployment) error {
	if deployment.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "deployment ID is empty")
	}

	docRef := r.client.Collection(collectionDeployment).Doc(string(deployment.ID))

	// Set creates or overwrites; PutDeployment is the replay target for
	// degraded-success recovery, so overwriting the same run ID must be
	// safe.
	if _, err := docRef.Set(ctx, deployment); err != nil {
		return goerr.Wrap(err, "failed to put deployment",
			goerr.V("id", deployment.ID),
		)
	}

	return nil
}

func (r *deployRepository) GetDeployment(ctx context.Context, id types.RunID) (*model.Deployment, error) {
	doc, err := r.client.Collection(collectionDeployment).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "deployment not found",
				goerr.V("id", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get deployment",
			goerr.V("id", id),
		)
	}

	var deployment model.Deployment
	if err := doc.DataTo(&deployment); err != nil {
		return nil, goerr.Wrap(err, "failed to decode deployment document",
			goerr.V("id", id),
		)
	}

	return &deployment, nil
}

func (r *deployRepository) ListDeployments(ctx context.Context, limit int) ([]*model.Deployment, error) {
	query := r.client.Collection(collectionDeployment).
		OrderBy("timestamp", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var deployments []*model.Deployment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate deployments")
		}

		var deployment model.Deployment
		if err := doc.DataTo(&deployment); err != nil {
			return nil, goerr.Wrap(err, "failed to decode deployment document",
				goerr.V("doc", doc.Ref.ID),
			)
		}
		deployments = append(deployments, &deployment)
	}

	return deployments, nil
}

func (r *deployRepository) UpdateDeploymentStatus(ctx context.Context, id types.RunID, newStatus types.DeployStatus) error {
	docRef := r.client.Collection(collectionDeployment).Doc(string(id))

	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "status", Value: string(newStatus)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "deployment not found",
				goerr.V("id", id),
			)
		}
		return goerr.Wrap(err, "failed to update deployment status",
			goerr.V("id", id),
			goerr.V("status", newStatus),
		)
	}

	return nil
}
