package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipgate/pkg/controller/server"
	"github.com/m-mizutani/shipgate/pkg/domain/mock"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
)

func testPipeline() *model.Pipeline {
	return &model.Pipeline{
		Runner:  "mocha",
		Suites:  []string{"test/all.js"},
		Publish: []string{"firebase", "deploy"},
	}
}

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET /health returns 200", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})
}

func TestListDeployments(t *testing.T) {
	t.Run("returns deployment records as JSON", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListDeploymentsFunc: func(ctx context.Context, limit int) ([]*model.Deployment, error) {
				return []*model.Deployment{
					{
						ID:     types.RunID("run-1"),
						Status: types.DeployStatusSuccess,
						Outcome: model.TestOutcome{
							Passed: 5,
						},
					},
				}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/deployments?limit=10", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Deployments []*model.Deployment `json:"deployments"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.A(t, resp.Deployments).Length(1)
		gt.V(t, resp.Deployments[0].ID).Equal(types.RunID("run-1"))

		calls := mockUC.ListDeploymentsCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Limit).Equal(10)
	})

	t.Run("rejects malformed limit", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/deployments?limit=banana", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestRunWebhook(t *testing.T) {
	t.Run("valid request is accepted and runs in background", func(t *testing.T) {
		done := make(chan *model.RunPipelineInput, 1)
		mockUC := &mock.UseCaseMock{
			RunPipelineFunc: func(ctx context.Context, input *model.RunPipelineInput) (*model.Deployment, error) {
				done <- input
				return &model.Deployment{
					ID:     types.NewRunID(),
					Status: types.DeployStatusSuccess,
				}, nil
			},
		}
		srv := server.New(mockUC, server.WithPipeline(testPipeline()))

		body := []byte(`{"commit":"a1b2c3d4e5f60718293a4b5c6d7e8f9012345678","short_hash":"a1b2c3d","branch":"main"}`)
		req := httptest.NewRequest(http.MethodPost, "/webhook/run", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		select {
		case input := <-done:
			gt.V(t, input.Revision.ShortHash).Equal("a1b2c3d")
			gt.V(t, input.Revision.Branch).Equal(types.BranchName("main"))
		case <-time.After(3 * time.Second):
			t.Fatal("pipeline run was not triggered")
		}
	})

	t.Run("rejected when no pipeline is configured", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		body := []byte(`{"commit":"a1b2c3d4","short_hash":"a1b2c3d","branch":"main"}`)
		req := httptest.NewRequest(http.MethodPost, "/webhook/run", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("rejected when revision is missing", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{}, server.WithPipeline(testPipeline()))

		body := []byte(`{}`)
		req := httptest.NewRequest(http.MethodPost, "/webhook/run", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}
