package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
	"github.com/m-mizutani/shipgate/pkg/utils/logging"
	"github.com/m-mizutani/shipgate/pkg/utils/safe"
)

// deploy publishes artifacts and records the deployment. The caller
// must have consulted the gate already. Once the publish succeeded the
// deployment never flips back to failed: artifacts are live, so any
// later problem (bundle upload, record write) leaves the deployment
// degraded and only the missing step is retried later.
func (x *UseCase) deploy(ctx context.Context, pipeline *model.Pipeline, deployment *model.Deployment) error {
	if len(pipeline.Publish) == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "publish command is not configured")
	}

	if err := x.clients.CommandRunner().Run(ctx, pipeline.Publish); err != nil {
		deployment.Status = types.DeployStatusFailed
		return goerr.Wrap(err, "failed to publish artifacts")
	}

	deployment.Status = types.DeployStatusSuccess

	if err := x.uploadArtifacts(ctx, pipeline, deployment); err != nil {
		deployment.Status = types.DeployStatusDegraded
		logging.From(ctx).Warn("artifacts are published but the audit bundle upload failed",
			slog.Any("error", err),
			slog.String("run_id", deployment.ID.String()),
		)
	}

	if err := x.RecordDeployment(ctx, deployment); err != nil {
		deployment.Status = types.DeployStatusDegraded

		if dumpErr := x.dumpRecord(deployment); dumpErr != nil {
			logging.From(ctx).Error("failed to dump deployment record for replay",
				slog.Any("error", dumpErr),
			)
		}

		logging.From(ctx).Warn("artifacts are published but the deployment record is missing; replay with the record command",
			slog.Any("error", err),
			slog.String("run_id", deployment.ID.String()),
			slog.String("dump", x.recordDumpPath),
		)
		return nil
	}

	logging.From(ctx).Info("deployed", slog.String("summary", deployment.Summary()))

	return nil
}

func (x *UseCase) uploadArtifacts(ctx context.Context, pipeline *model.Pipeline, deployment *model.Deployment) error {
	storage := x.clients.Storage()
	if storage == nil || len(pipeline.Artifacts) == 0 {
		return nil
	}

	for _, artifact := range pipeline.Artifacts {
		fd, err := os.Open(filepath.Clean(artifact))
		if err != nil {
			return goerr.Wrap(err, "failed to open artifact", goerr.V("path", artifact))
		}

		object := deployment.ID.String() + "/" + filepath.Base(artifact)
		if err := storage.Put(ctx, object, fd); err != nil {
			safe.Close(fd)
			return goerr.Wrap(err, "failed to upload artifact",
				goerr.V("path", artifact),
				goerr.V("object", object),
			)
		}
		safe.Close(fd)
	}

	return nil
}

// dumpRecord keeps the deployment record locally so the record write
// can be replayed without re-publishing.
func (x *UseCase) dumpRecord(deployment *model.Deployment) error {
	if err := os.MkdirAll(filepath.Dir(x.recordDumpPath), 0700); err != nil {
		return goerr.Wrap(err, "failed to create record dump directory", goerr.V("path", x.recordDumpPath))
	}

	raw, err := json.Marshal(deployment)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal deployment record")
	}

	if err := os.WriteFile(x.recordDumpPath, raw, 0600); err != nil {
		return goerr.Wrap(err, "failed to write record dump", goerr.V("path", x.recordDumpPath))
	}

	return nil
}

// ReplayRecord retries the record write of a degraded deployment. The
// artifacts are already live, so nothing is published here.
func (x *UseCase) ReplayRecord(ctx context.Context) (*model.Deployment, error) {
	var deployment model.Deployment
	if err := unmarshalFile(x.recordDumpPath, &deployment); err != nil {
		return nil, goerr.Wrap(err, "no replayable deployment record",
			goerr.V("path", x.recordDumpPath),
		)
	}

	deployment.Status = types.DeployStatusSuccess
	if err := x.RecordDeployment(ctx, &deployment); err != nil {
		return nil, err
	}

	safe.Remove(x.recordDumpPath)

	logging.From(ctx).Info("deployment record replayed",
		slog.String("run_id", deployment.ID.String()),
	)

	return &deployment, nil
}
