package config

import (
	"log/slog"

	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
	"github.com/m-mizutani/shipgate/pkg/infra/ghapp"
	"github.com/urfave/cli/v3"
)

type GitHubApp struct {
	id         types.GitHubAppID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`

	owner     string
	repoName  string
	installID types.GitHubAppInstallID
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (optional, enables commit statuses)",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("SHIPGATE_GITHUB_APP_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("SHIPGATE_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "GitHub repository owner (auto-detect from git if not specified)",
			Category:    "GitHub App",
			Destination: &x.owner,
			Sources:     cli.EnvVars("SHIPGATE_GITHUB_OWNER"),
		},
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "GitHub repository name (auto-detect from git if not specified)",
			Category:    "GitHub App",
			Destination: &x.repoName,
			Sources:     cli.EnvVars("SHIPGATE_GITHUB_REPO"),
		},
		&cli.Int64Flag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("SHIPGATE_GITHUB_INSTALLATION_ID"),
		},
	}
}

func (x *GitHubApp) Enabled() bool {
	return x.id != 0 && x.privateKey != ""
}

func (x *GitHubApp) New() (*ghapp.Client, error) {
	return ghapp.New(x.id, x.privateKey)
}

func (x *GitHubApp) Target() *model.GitHubTarget {
	return &model.GitHubTarget{
		Owner:     x.owner,
		RepoName:  x.repoName,
		InstallID: x.installID,
	}
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("owner", x.owner),
		slog.String("repo", x.repoName),
		slog.Int64("installID", int64(x.installID)),
	)
}
