package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/interfaces"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
	"github.com/m-mizutani/shipgate/pkg/utils/errutil"
	"github.com/m-mizutani/shipgate/pkg/utils/logging"
)

var _ interfaces.UseCase = (*UseCase)(nil)

const commitStatusContext = "shipgate/gate"

// RunPipeline is the whole sequence: toolchain, test run, gate,
// deploy, record. Test failures are not errors; they come back as a
// skipped deployment. An error return always means an infrastructure
// problem.
func (x *UseCase) RunPipeline(ctx context.Context, input *model.RunPipelineInput) (*model.Deployment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	x.postCommitStatus(ctx, input, "pending", "running test suites")

	if !input.SkipToolchain {
		for _, step := range [][]string{input.Pipeline.Install, input.Pipeline.Compile} {
			if len(step) == 0 {
				continue
			}
			if err := x.clients.CommandRunner().Run(ctx, step); err != nil {
				x.postCommitStatus(ctx, input, "error", "toolchain step failed")
				return nil, goerr.Wrap(err, "toolchain step failed", goerr.V("argv", step))
			}
		}
	}

	outcome, suites, err := x.RunSuites(ctx, input.Pipeline)
	if err != nil {
		x.postCommitStatus(ctx, input, "error", "test suite failed to load")
		return nil, err
	}

	deployment := &model.Deployment{
		ID:        types.NewRunID(),
		Timestamp: logging.CtxTime(ctx),
		Revision:  input.Revision,
		Outcome:   *outcome,
		Suites:    suites,
		Status:    types.DeployStatusSkipped,
	}

	logging.From(ctx).Info("test run finished",
		slog.String("outcome", outcome.String()),
		slog.String("branch", string(input.Revision.Branch)),
		slog.String("commit", input.Revision.ShortHash),
	)

	if input.TestOnly {
		return deployment, nil
	}

	if !ShouldDeploy(*outcome) {
		x.postCommitStatus(ctx, input, "failure", outcome.String())
		logging.From(ctx).Warn("Deploy failed",
			slog.Int("failed", outcome.Failed),
			slog.String("outcome", outcome.String()),
		)
		return deployment, nil
	}

	x.postCommitStatus(ctx, input, "success", outcome.String())

	if err := x.deploy(ctx, input.Pipeline, deployment); err != nil {
		return deployment, err
	}

	return deployment, nil
}

// postCommitStatus is best-effort: a status API hiccup must not block
// the pipeline.
func (x *UseCase) postCommitStatus(ctx context.Context, input *model.RunPipelineInput, state, description string) {
	gh := x.clients.GitHubStatus()
	if gh == nil || !input.GitHub.Enabled() {
		return
	}

	err := gh.CreateCommitStatus(ctx, &interfaces.CommitStatusInput{
		Owner:       input.GitHub.Owner,
		Repo:        input.GitHub.RepoName,
		CommitSHA:   input.Revision.CommitSHA,
		InstallID:   input.GitHub.InstallID,
		State:       state,
		Description: description,
		Context:     commitStatusContext,
	})
	if err != nil {
		errutil.HandleError(ctx, "failed to post commit status", err)
	}
}
