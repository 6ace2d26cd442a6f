package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
)

func TestTestOutcome(t *testing.T) {
	t.Run("all passed", func(t *testing.T) {
		outcome := model.TestOutcome{Passed: 5}
		gt.False(t, outcome.HasFailures())
		gt.V(t, outcome.Total()).Equal(5)
		gt.V(t, outcome.String()).Equal("5/5 tests passed")
	})

	t.Run("single failure is enough", func(t *testing.T) {
		outcome := model.TestOutcome{Passed: 99, Failed: 1}
		gt.True(t, outcome.HasFailures())
		gt.V(t, outcome.String()).Equal("99/100 tests passed")
	})

	t.Run("zero tests", func(t *testing.T) {
		outcome := model.TestOutcome{}
		gt.False(t, outcome.HasFailures())
		gt.V(t, outcome.String()).Equal("0/0 tests passed")
	})

	t.Run("merge accumulates", func(t *testing.T) {
		outcome := model.TestOutcome{Passed: 3}
		outcome.Merge(model.TestOutcome{Passed: 2, Failed: 1})
		gt.V(t, outcome.Passed).Equal(5)
		gt.V(t, outcome.Failed).Equal(1)
		gt.V(t, outcome.Total()).Equal(6)
	})
}
