package usecase

import (
	"github.com/m-mizutani/shipgate/pkg/infra"
)

const defaultRecordDumpPath = ".shipgate/last_record.json"

type UseCase struct {
	clients *infra.Clients

	// recordDumpPath is where a deployment record is kept locally when
	// the remote record write fails, so the write can be replayed
	// without re-publishing.
	recordDumpPath string
}

type Option func(*UseCase)

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:        clients,
		recordDumpPath: defaultRecordDumpPath,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

func WithRecordDumpPath(path string) Option {
	return func(x *UseCase) {
		x.recordDumpPath = path
	}
}
