package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	RunID        string
	RequestID    string
	BranchName   string
	CommitSHA    string
	SuiteName    string
	DeployStatus string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string

	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppSecret     string
	GitHubAppPrivateKey string
)

const (
	// DeployStatusSuccess: artifacts published and record written
	DeployStatusSuccess DeployStatus = "success"
	// DeployStatusSkipped: gate rejected, neither publish nor record performed
	DeployStatusSkipped DeployStatus = "skipped"
	// DeployStatusDegraded: artifacts published but a post-publish step
	// (bundle upload or record write) failed
	DeployStatusDegraded DeployStatus = "degraded"
	// DeployStatusFailed: publish itself failed
	DeployStatusFailed DeployStatus = "failed"
)

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RunID) String() string           { return string(x) }
func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

func (x GitHubAppSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppSecret) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
