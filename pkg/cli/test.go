package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/shipgate/pkg/usecase"
	"github.com/m-mizutani/shipgate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func testCommand() *cli.Command {
	var cmd pipelineCmd

	return &cli.Command{
		Name:    "test",
		Aliases: []string{"t"},
		Usage:   "Run the test suites and report the tally, no deploy",
		Flags:   cmd.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			input, err := cmd.BuildInput(ctx)
			if err != nil {
				return err
			}
			input.TestOnly = true

			clients, err := cmd.BuildClients(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(clients)

			deployment, err := uc.RunPipeline(ctx, input)
			if err != nil {
				return err
			}

			logging.Default().Info("Test run completed",
				slog.String("outcome", deployment.Outcome.String()),
				slog.Bool("would_deploy", usecase.ShouldDeploy(deployment.Outcome)),
			)

			return nil
		},
	}
}
