package infra_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipgate/pkg/domain/mock"
	"github.com/m-mizutani/shipgate/pkg/infra"
	"github.com/m-mizutani/shipgate/pkg/repository/memory"
)

func TestClients(t *testing.T) {
	t.Run("default command runner is set", func(t *testing.T) {
		clients := infra.New()
		gt.NotNil(t, clients.CommandRunner())
		gt.Nil(t, clients.BigQuery())
		gt.Nil(t, clients.DeployRepository())
	})

	t.Run("options replace clients", func(t *testing.T) {
		runner := &mock.CommandRunnerMock{
			RunFunc: func(ctx context.Context, argv []string) error { return nil },
		}
		repo := memory.New()

		clients := infra.New(
			infra.WithCommandRunner(runner),
			infra.WithDeployRepository(repo),
		)

		gt.NoError(t, clients.CommandRunner().Run(context.Background(), []string{"true"}))
		gt.A(t, runner.RunCalls()).Length(1)
		gt.V(t, clients.DeployRepository()).Equal(repo)
	})

	t.Run("record sink detection", func(t *testing.T) {
		gt.False(t, infra.New().HasRecordSink())
		gt.True(t, infra.New(infra.WithDeployRepository(memory.New())).HasRecordSink())
		gt.True(t, infra.New(infra.WithBigQuery(&mock.BigQueryMock{})).HasRecordSink())
	})
}
