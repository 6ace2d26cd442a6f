package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/shipgate/pkg/usecase"
	"github.com/m-mizutani/shipgate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func runCommand() *cli.Command {
	var cmd pipelineCmd

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Run the full pipeline: toolchain, tests, gate, deploy",
		Flags:   cmd.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			input, err := cmd.BuildInput(ctx)
			if err != nil {
				return err
			}

			clients, err := cmd.BuildClients(ctx)
			if err != nil {
				return err
			}

			logging.Default().Info("Starting pipeline run",
				slog.String("branch", string(input.Revision.Branch)),
				slog.String("commit", input.Revision.ShortHash),
				slog.Any("pipeline", &cmd.pipeline),
				slog.Any("bigquery", &cmd.bigQuery),
				slog.Bool("firestore_enabled", cmd.firestore.Enabled()),
				slog.Any("github_app", cmd.githubApp),
			)

			uc := usecase.New(clients)

			deployment, err := uc.RunPipeline(ctx, input)
			if err != nil {
				return err
			}

			logging.Default().Info("Pipeline run completed", slog.String("summary", deployment.Summary()))

			return nil
		},
	}
}
