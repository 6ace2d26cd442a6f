package usecase

import "github.com/m-mizutani/shipgate/pkg/domain/model"

// ShouldDeploy is the deployment gate: deploy only when no test case
// failed. Pure function, no hidden state.
func ShouldDeploy(outcome model.TestOutcome) bool {
	return !outcome.HasFailures()
}
