package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/shipgate/pkg/usecase"
	"github.com/m-mizutani/shipgate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func deployCommand() *cli.Command {
	var cmd pipelineCmd

	return &cli.Command{
		Name:    "deploy",
		Usage:   "Run tests, gate and deploy on an already built tree",
		Flags:   cmd.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			input, err := cmd.BuildInput(ctx)
			if err != nil {
				return err
			}
			input.SkipToolchain = true

			clients, err := cmd.BuildClients(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(clients)

			deployment, err := uc.RunPipeline(ctx, input)
			if err != nil {
				return err
			}

			logging.Default().Info("Deploy completed", slog.String("summary", deployment.Summary()))

			return nil
		},
	}
}
