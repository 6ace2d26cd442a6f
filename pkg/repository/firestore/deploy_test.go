package firestore_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipgate/pkg/domain/interfaces"
	"github.com/m-mizutani/shipgate/pkg/repository/firestore"
	"github.com/m-mizutani/shipgate/pkg/repository/testhelper"
	"github.com/m-mizutani/shipgate/pkg/utils/testutil"
)

func TestDeployRepository(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_PROJECT_ID")
	databaseID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_DATABASE_ID")

	testhelper.TestDeployRepository(t, func(t *testing.T) interfaces.DeployRepository {
		return gt.R1(firestore.New(context.Background(), projectID, databaseID)).NoError(t)
	})
}
