package server

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
)

// runRequest is the body of POST /webhook/run. The pipeline definition
// itself is server configuration; the request only names the revision
// to build.
type runRequest struct {
	CommitSHA types.CommitSHA  `json:"commit"`
	ShortHash string           `json:"short_hash"`
	Branch    types.BranchName `json:"branch"`
	TestOnly  bool             `json:"test_only"`
}

func parseRunRequest(r *http.Request, cfg *config) (*model.RunPipelineInput, error) {
	if cfg.pipeline == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pipeline is not configured for webhook runs")
	}

	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, goerr.Wrap(err, "fail to decode run request body")
	}

	input := &model.RunPipelineInput{
		Pipeline: cfg.pipeline,
		Revision: model.RevisionSummary{
			CommitSHA: req.CommitSHA,
			ShortHash: req.ShortHash,
			Branch:    req.Branch,
		},
		TestOnly: req.TestOnly,
		GitHub:   cfg.github,
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return input, nil
}
