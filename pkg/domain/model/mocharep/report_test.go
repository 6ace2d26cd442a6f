package mocharep_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipgate/pkg/domain/model/mocharep"
)

const sampleReport = `{
	"stats": {
		"suites": 2,
		"tests": 4,
		"passes": 3,
		"pending": 0,
		"failures": 1,
		"start": "2024-05-01T10:00:00.000Z",
		"end": "2024-05-01T10:00:02.500Z",
		"duration": 2500
	},
	"tests": [
		{"title": "returns 200", "fullTitle": "api returns 200", "file": "test/api.js", "duration": 12},
		{"title": "rejects bad token", "fullTitle": "auth rejects bad token", "file": "test/auth.js", "duration": 30,
			"err": {"message": "expected 401 to equal 403", "stack": "AssertionError: ..."}}
	],
	"passes": [
		{"title": "returns 200", "fullTitle": "api returns 200", "file": "test/api.js", "duration": 12}
	],
	"failures": [
		{"title": "rejects bad token", "fullTitle": "auth rejects bad token", "file": "test/auth.js", "duration": 30,
			"err": {"message": "expected 401 to equal 403", "stack": "AssertionError: ..."}}
	],
	"pending": []
}`

func TestReportParse(t *testing.T) {
	var report mocharep.Report
	gt.NoError(t, json.Unmarshal([]byte(sampleReport), &report))

	gt.V(t, report.Stats.Tests).Equal(4)
	gt.V(t, report.Stats.Passes).Equal(3)
	gt.V(t, report.Stats.Failures).Equal(1)
	gt.A(t, report.Failures).Length(1)
	gt.V(t, report.Failures[0].Err.Message).Equal("expected 401 to equal 403")
	gt.NoError(t, report.Validate())
}

func TestReportValidate(t *testing.T) {
	t.Run("counts must add up", func(t *testing.T) {
		report := &mocharep.Report{
			Stats: mocharep.Stats{Tests: 5, Passes: 1, Failures: 1, Pending: 0},
		}
		gt.Error(t, report.Validate())
	})

	t.Run("negative counts are rejected", func(t *testing.T) {
		report := &mocharep.Report{
			Stats: mocharep.Stats{Tests: -1, Passes: -1},
		}
		gt.Error(t, report.Validate())
	})

	t.Run("pending tests count toward the total", func(t *testing.T) {
		report := &mocharep.Report{
			Stats: mocharep.Stats{Tests: 3, Passes: 2, Failures: 0, Pending: 1},
		}
		gt.NoError(t, report.Validate())
	})
}
