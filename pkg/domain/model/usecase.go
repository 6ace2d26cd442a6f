package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
)

// GitHubTarget identifies the repository that receives commit statuses.
// InstallID selects the GitHub App installation to authenticate as.
type GitHubTarget struct {
	Owner     string
	RepoName  string
	InstallID types.GitHubAppInstallID
}

func (x *GitHubTarget) Enabled() bool {
	return x.Owner != "" && x.RepoName != ""
}

func (x *GitHubTarget) Validate() error {
	if x.Owner == "" || x.RepoName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "GitHub owner/repo is empty")
	}
	if x.InstallID == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "install ID is empty")
	}
	return nil
}

type RunPipelineInput struct {
	Pipeline *Pipeline
	Revision RevisionSummary

	// SkipToolchain omits the install and compile steps. Used by the
	// deploy subcommand when the tree is already built.
	SkipToolchain bool

	// TestOnly stops after the test run; the gate and deployer never
	// run.
	TestOnly bool

	GitHub GitHubTarget
}

func (x *RunPipelineInput) Validate() error {
	if x.Pipeline == nil {
		return goerr.Wrap(types.ErrInvalidOption, "pipeline is not set")
	}
	if err := x.Pipeline.Validate(); err != nil {
		return err
	}
	return x.Revision.Validate()
}
