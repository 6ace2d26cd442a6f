package bq_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
	"github.com/m-mizutani/shipgate/pkg/infra/bq"
	"github.com/m-mizutani/shipgate/pkg/utils/testutil"
)

func TestInsert(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BQ_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BQ_DATASET_ID")
	tableID := testutil.GetEnvOrSkip(t, "TEST_BQ_TABLE_ID")

	ctx := context.Background()
	client := gt.R1(bq.New(ctx,
		types.GoogleProjectID(projectID),
		types.BQDatasetID(datasetID),
		types.BQTableID(tableID),
	)).NoError(t)

	deployment := &model.Deployment{
		ID:        types.NewRunID(),
		Timestamp: time.Now().UTC(),
		Revision: model.RevisionSummary{
			CommitSHA: "0000000000000000000000000000000000000000",
			ShortHash: "0000000",
			Branch:    "main",
		},
		Outcome: model.TestOutcome{Passed: 5},
		Status:  types.DeployStatusSuccess,
	}
	record := &model.DeploymentRawRecord{
		Deployment: *deployment,
		Timestamp:  deployment.Timestamp.UnixMicro(),
	}

	schema := gt.R1(bqs.Infer(record)).NoError(t)

	md := gt.R1(client.GetMetadata(ctx)).NoError(t)
	if md == nil {
		gt.NoError(t, client.CreateTable(ctx, nil))
	}

	gt.NoError(t, client.Insert(ctx, schema, record))
}
