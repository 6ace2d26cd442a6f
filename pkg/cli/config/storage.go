package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/shipgate/pkg/domain/interfaces"
	"github.com/m-mizutani/shipgate/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
)

type Storage struct {
	bucket string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "artifact-bucket",
			Usage:       "Cloud Storage bucket for artifact bundles (optional)",
			Category:    "Storage",
			Sources:     cli.EnvVars("SHIPGATE_ARTIFACT_BUCKET"),
			Destination: &x.bucket,
		},
	}
}

func (x *Storage) Enabled() bool {
	return x.bucket != ""
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("bucket", x.bucket),
	)
}

func (x *Storage) NewClient(ctx context.Context) (interfaces.Storage, error) {
	return gcs.New(ctx, x.bucket)
}
