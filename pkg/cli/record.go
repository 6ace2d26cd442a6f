package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/shipgate/pkg/cli/config"
	"github.com/m-mizutani/shipgate/pkg/infra"
	"github.com/m-mizutani/shipgate/pkg/usecase"
	"github.com/m-mizutani/shipgate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func recordCommand() *cli.Command {
	var (
		recordFile string

		bigQuery  config.BigQuery
		firestore config.Firestore
		sentry    config.Sentry
	)

	return &cli.Command{
		Name:  "record",
		Usage: "Replay the record write of a degraded deployment",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "record-file",
				Usage:       "Path to the dumped deployment record",
				Value:       ".shipgate/last_record.json",
				Sources:     cli.EnvVars("SHIPGATE_RECORD_FILE"),
				Destination: &recordFile,
			},
		}, bigQuery.Flags(), firestore.Flags(), sentry.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireRecordSink(&bigQuery, &firestore); err != nil {
				return err
			}

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			var options []infra.Option

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return goerr.Wrap(err, "failed to create BigQuery client")
			} else if bqClient != nil {
				options = append(options, infra.WithBigQuery(bqClient))
			}

			if firestore.Enabled() {
				repo, err := firestore.NewRepository(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to create Firestore repository")
				}
				options = append(options, infra.WithDeployRepository(repo))
			}

			uc := usecase.New(infra.New(options...), usecase.WithRecordDumpPath(recordFile))

			deployment, err := uc.ReplayRecord(ctx)
			if err != nil {
				return err
			}

			logging.Default().Info("Record replay completed", slog.String("summary", deployment.Summary()))

			return nil
		},
	}
}
