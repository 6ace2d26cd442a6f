package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/shipgate/pkg/cli/config"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
	"github.com/m-mizutani/shipgate/pkg/infra"
	"github.com/m-mizutani/shipgate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// pipelineCmd bundles the configuration shared by the run, test and
// deploy commands. They execute the same pipeline with different
// stopping points.
type pipelineCmd struct {
	dir      string
	pipeline config.Pipeline
	revision model.RevisionSummary

	bigQuery  config.BigQuery
	firestore config.Firestore
	storage   config.Storage
	githubApp config.GitHubApp
	sentry    config.Sentry
}

func (x *pipelineCmd) Flags() []cli.Flag {
	return slice.Flatten([]cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Aliases:     []string{"d"},
			Usage:       "Path to project directory",
			Value:       ".",
			Destination: &x.dir,
		},
		&cli.StringFlag{
			Name:        "commit",
			Usage:       "Commit SHA (auto-detect from git if not specified)",
			Sources:     cli.EnvVars("SHIPGATE_COMMIT"),
			Destination: (*string)(&x.revision.CommitSHA),
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Branch name (auto-detect from git if not specified)",
			Sources:     cli.EnvVars("SHIPGATE_BRANCH"),
			Destination: (*string)(&x.revision.Branch),
		},
	},
		x.pipeline.Flags(),
		x.bigQuery.Flags(),
		x.firestore.Flags(),
		x.storage.Flags(),
		x.githubApp.Flags(),
		x.sentry.Flags(),
	)
}

// BuildInput loads the pipeline definition and resolves the revision.
func (x *pipelineCmd) BuildInput(ctx context.Context) (*model.RunPipelineInput, error) {
	pipeline, err := x.pipeline.Load()
	if err != nil {
		return nil, err
	}

	if err := AutoDetectRevision(ctx, x.dir, &x.revision); err != nil {
		return nil, err
	}

	input := &model.RunPipelineInput{
		Pipeline: pipeline,
		Revision: x.revision,
	}

	if x.githubApp.Enabled() {
		target := x.githubApp.Target()
		if err := AutoDetectGitHubTarget(x.dir, target); err != nil {
			return nil, err
		}
		if err := target.Validate(); err != nil {
			return nil, err
		}
		input.GitHub = *target
	}

	return input, nil
}

// BuildClients assembles the infra clients from whatever sinks are
// configured.
func (x *pipelineCmd) BuildClients(ctx context.Context) (*infra.Clients, error) {
	if err := x.sentry.Configure(ctx); err != nil {
		return nil, err
	}

	var options []infra.Option

	if bqClient, err := x.bigQuery.NewClient(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client")
	} else if bqClient != nil {
		options = append(options, infra.WithBigQuery(bqClient))
	}

	if x.firestore.Enabled() {
		repo, err := x.firestore.NewRepository(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Firestore repository")
		}
		options = append(options, infra.WithDeployRepository(repo))
	}

	if x.storage.Enabled() {
		storageClient, err := x.storage.NewClient(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create storage client")
		}
		options = append(options, infra.WithStorage(storageClient))
	}

	if x.githubApp.Enabled() {
		ghApp, err := x.githubApp.New()
		if err != nil {
			return nil, err
		}
		options = append(options, infra.WithGitHubStatus(ghApp))
	}

	clients := infra.New(options...)

	if !clients.HasRecordSink() {
		logging.From(ctx).Warn("no record sink configured, deployment records will not be persisted")
	}

	return clients, nil
}

func requireRecordSink(bigQuery *config.BigQuery, firestoreConfig *config.Firestore) error {
	if !bigQuery.Enabled() && !firestoreConfig.Enabled() {
		return goerr.Wrap(types.ErrInvalidOption, "no record sink configured (BigQuery or Firestore is required)")
	}
	return nil
}
