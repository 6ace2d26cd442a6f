package ghapp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/interfaces"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
	"github.com/m-mizutani/shipgate/pkg/utils/logging"
)

// Client posts commit statuses for gated revisions via a GitHub App
// installation.
type Client struct {
	appID types.GitHubAppID
	pem   types.GitHubAppPrivateKey
}

var _ interfaces.GitHubStatus = (*Client)(nil)

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	return &Client{
		appID: appID,
		pem:   pem,
	}, nil
}

func (x *Client) buildGithubClient(installID types.GitHubAppInstallID) (*github.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.New(tr, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create github client")
	}

	return github.NewClient(&http.Client{Transport: itr}), nil
}

// CreateCommitStatus implements interfaces.GitHubStatus.
// https://docs.github.com/en/rest/commits/statuses#create-a-commit-status
func (x *Client) CreateCommitStatus(ctx context.Context, input *interfaces.CommitStatusInput) error {
	client, err := x.buildGithubClient(input.InstallID)
	if err != nil {
		return err
	}

	status := &github.RepoStatus{
		State:       github.String(input.State),
		Description: github.String(input.Description),
		Context:     github.String(input.Context),
	}

	created, resp, err := client.Repositories.CreateStatus(ctx, input.Owner, input.Repo, string(input.CommitSHA), status)
	if err != nil {
		return goerr.Wrap(err, "failed to create commit status",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("commit", input.CommitSHA),
		)
	}
	if resp.StatusCode != http.StatusCreated {
		return goerr.New("unexpected status code from commit status API",
			goerr.V("status", resp.StatusCode),
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
		)
	}

	logging.From(ctx).Debug("created commit status",
		slog.String("state", input.State),
		slog.Any("status", created),
	)

	return nil
}
