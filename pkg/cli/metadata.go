package cli

import (
	"context"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
)

const shortHashLen = 7

// AutoDetectRevision fills empty revision fields from the git repository
// at dir. Explicitly given values are preserved.
func AutoDetectRevision(ctx context.Context, dir string, rev *model.RevisionSummary) error {
	if rev.CommitSHA != "" && rev.Branch != "" {
		if rev.ShortHash == "" {
			rev.ShortHash = shortHash(string(rev.CommitSHA))
		}
		return nil
	}

	repo, err := git.PlainOpen(dir)
	if err != nil {
		return goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	head, err := repo.Head()
	if err != nil {
		return goerr.Wrap(err, "failed to get HEAD")
	}

	if rev.CommitSHA == "" {
		rev.CommitSHA = types.CommitSHA(head.Hash().String())
	}
	if rev.ShortHash == "" {
		rev.ShortHash = shortHash(string(rev.CommitSHA))
	}
	if rev.Branch == "" && head.Name().IsBranch() {
		rev.Branch = types.BranchName(head.Name().Short())
	}

	return nil
}

func shortHash(sha string) string {
	if len(sha) <= shortHashLen {
		return sha
	}
	return sha[:shortHashLen]
}

// AutoDetectGitHubTarget fills empty owner/repo from the origin remote
// URL. Failures are returned so the caller can decide whether commit
// statuses were actually wanted.
func AutoDetectGitHubTarget(dir string, target *model.GitHubTarget) error {
	if target.Owner != "" && target.RepoName != "" {
		return nil
	}

	repo, err := git.PlainOpen(dir)
	if err != nil {
		return goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return goerr.New("no remote URL found")
	}

	// Parse git remote URL (e.g., git@github.com:owner/repo.git or https://github.com/owner/repo.git)
	url := remote.Config().URLs[0]
	var owner, repoName string

	if strings.HasPrefix(url, "git@github.com:") {
		// SSH format: git@github.com:owner/repo.git
		parts := strings.TrimPrefix(url, "git@github.com:")
		parts = strings.TrimSuffix(parts, ".git")
		ownerRepo := strings.Split(parts, "/")
		if len(ownerRepo) == 2 {
			owner = ownerRepo[0]
			repoName = ownerRepo[1]
		}
	} else if strings.Contains(url, "github.com/") {
		// HTTPS format: https://github.com/owner/repo.git
		parts := strings.Split(url, "github.com/")
		if len(parts) == 2 {
			parts[1] = strings.TrimSuffix(parts[1], ".git")
			ownerRepo := strings.Split(parts[1], "/")
			if len(ownerRepo) == 2 {
				owner = ownerRepo[0]
				repoName = ownerRepo[1]
			}
		}
	}

	if owner == "" || repoName == "" {
		return goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}

	if target.Owner == "" {
		target.Owner = owner
	}
	if target.RepoName == "" {
		target.RepoName = repoName
	}

	return nil
}
