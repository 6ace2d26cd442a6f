package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/interfaces"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
	"github.com/m-mizutani/shipgate/pkg/utils/logging"
)

// RecordDeployment writes the deployment record to every configured
// sink. Retrying with the same run ID is safe: the repository keys on
// the ID and overwrites.
func (x *UseCase) RecordDeployment(ctx context.Context, deployment *model.Deployment) error {
	if !x.clients.HasRecordSink() {
		logging.From(ctx).Warn("no record sink configured, deployment record is not persisted")
		return nil
	}

	if bq := x.clients.BigQuery(); bq != nil {
		schema, err := createOrUpdateBigQueryTable(ctx, bq, deployment)
		if err != nil {
			return goerr.Wrap(types.ErrRecordWrite, "failed to prepare BigQuery table", goerr.V("cause", err))
		}

		rawRecord := &model.DeploymentRawRecord{
			Deployment: *deployment,
			Timestamp:  deployment.Timestamp.UnixMicro(),
		}

		if err := bq.Insert(ctx, schema, rawRecord); err != nil {
			return goerr.Wrap(types.ErrRecordWrite, "failed to insert deployment to BigQuery", goerr.V("cause", err))
		}
	}

	if repo := x.clients.DeployRepository(); repo != nil {
		if err := repo.PutDeployment(ctx, deployment); err != nil {
			return goerr.Wrap(types.ErrRecordWrite, "failed to put deployment record", goerr.V("cause", err))
		}
	}

	return nil
}

// ListDeployments returns recent deployment records, newest first.
func (x *UseCase) ListDeployments(ctx context.Context, limit int) ([]*model.Deployment, error) {
	repo := x.clients.DeployRepository()
	if repo == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "deployment repository is not configured")
	}

	return repo.ListDeployments(ctx, limit)
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, deployment *model.Deployment) (bigquery.Schema, error) {
	rawRecord := &model.DeploymentRawRecord{
		Deployment: *deployment,
		Timestamp:  deployment.Timestamp.UnixMicro(),
	}

	schema, err := bqs.Infer(rawRecord)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer deployment schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
