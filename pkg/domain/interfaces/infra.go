package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHubStatus CommandRunner Storage

import (
	"context"
	"io"

	"cloud.google.com/go/bigquery"

	"github.com/m-mizutani/shipgate/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// CommandRunner spawns one external command and waits for completion.
// argv[0] is the binary, the rest are its arguments.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) error
}

type GitHubStatus interface {
	CreateCommitStatus(ctx context.Context, input *CommitStatusInput) error
}

type CommitStatusInput struct {
	Owner     string
	Repo      string
	CommitSHA types.CommitSHA
	InstallID types.GitHubAppInstallID

	// State is one of pending, success, failure, error as defined by
	// the GitHub status API.
	State       string
	Description string
	Context     string
}

// Storage is the artifact bundle sink.
type Storage interface {
	Put(ctx context.Context, object string, r io.Reader) error
}
