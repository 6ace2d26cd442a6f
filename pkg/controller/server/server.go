package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/shipgate/pkg/domain/interfaces"
	"github.com/m-mizutani/shipgate/pkg/domain/model"
	"github.com/m-mizutani/shipgate/pkg/utils/errutil"
	"github.com/m-mizutani/shipgate/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func safeWriteJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	pipeline *model.Pipeline
	github   model.GitHubTarget
}

type Option func(*config)

// WithPipeline sets the pipeline definition that webhook triggered runs
// execute.
func WithPipeline(pipeline *model.Pipeline) Option {
	return func(cfg *config) {
		cfg.pipeline = pipeline
	}
}

func WithGitHubTarget(target model.GitHubTarget) Option {
	return func(cfg *config) {
		cfg.github = target
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/deployments", func(w http.ResponseWriter, r *http.Request) {
			limit := 0
			if raw := r.URL.Query().Get("limit"); raw != "" {
				v, err := strconv.Atoi(raw)
				if err != nil || v < 0 {
					safeWriteJSON(w, http.StatusBadRequest, map[string]string{
						"error": "limit must be a non-negative integer",
					})
					return
				}
				limit = v
			}

			deployments, err := uc.ListDeployments(r.Context(), limit)
			if err != nil {
				errutil.HandleError(r.Context(), "fail to list deployments", err)
				safeWriteJSON(w, http.StatusInternalServerError, map[string]string{
					"error": err.Error(),
				})
				return
			}

			safeWriteJSON(w, http.StatusOK, map[string]any{
				"deployments": deployments,
			})
		})
	})

	r.Route("/webhook", func(r chi.Router) {
		r.Post("/run", func(w http.ResponseWriter, r *http.Request) {
			input, err := parseRunRequest(r, cfg)
			if err != nil {
				errutil.HandleError(r.Context(), "fail to parse run request", err)
				safeWriteJSON(w, http.StatusBadRequest, map[string]string{
					"error": err.Error(),
				})
				return
			}

			// The request context dies with the response; the pipeline
			// keeps running on a detached one.
			bgCtx := DetachContext(r.Context())

			go runPipelineTask(bgCtx, uc, input)

			safeWriteJSON(w, http.StatusAccepted, map[string]string{
				"status":  "accepted",
				"message": "pipeline run enqueued",
			})
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func runPipelineTask(ctx context.Context, uc interfaces.UseCase, input *model.RunPipelineInput) {
	deployment, err := uc.RunPipeline(ctx, input)
	if err != nil {
		errutil.HandleError(ctx, "pipeline run failed", err)
		return
	}

	logging.From(ctx).Info("pipeline run finished",
		slog.String("summary", deployment.Summary()),
	)
}
