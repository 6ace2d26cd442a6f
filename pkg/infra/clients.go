package infra

import (
	"github.com/m-mizutani/shipgate/pkg/domain/interfaces"
	"github.com/m-mizutani/shipgate/pkg/infra/command"
)

type Clients struct {
	cmdRunner  interfaces.CommandRunner
	bqClient   interfaces.BigQuery
	ghStatus   interfaces.GitHubStatus
	deployRepo interfaces.DeployRepository
	storage    interfaces.Storage
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		cmdRunner: command.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) CommandRunner() interfaces.CommandRunner {
	return x.cmdRunner
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) GitHubStatus() interfaces.GitHubStatus {
	return x.ghStatus
}
func (x *Clients) DeployRepository() interfaces.DeployRepository {
	return x.deployRepo
}
func (x *Clients) Storage() interfaces.Storage {
	return x.storage
}

// HasRecordSink reports whether a deployment record can be persisted
// anywhere.
func (x *Clients) HasRecordSink() bool {
	return x.bqClient != nil || x.deployRepo != nil
}

func WithCommandRunner(runner interfaces.CommandRunner) Option {
	return func(x *Clients) {
		x.cmdRunner = runner
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithGitHubStatus(client interfaces.GitHubStatus) Option {
	return func(x *Clients) {
		x.ghStatus = client
	}
}

func WithDeployRepository(repo interfaces.DeployRepository) Option {
	return func(x *Clients) {
		x.deployRepo = repo
	}
}

func WithStorage(storage interfaces.Storage) Option {
	return func(x *Clients) {
		x.storage = storage
	}
}
