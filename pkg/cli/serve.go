package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/shipgate/pkg/controller/server"
	"github.com/m-mizutani/shipgate/pkg/usecase"
	"github.com/m-mizutani/shipgate/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string
		cmd  pipelineCmd
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("SHIPGATE_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode: webhook triggered runs and deployment history API",
		Flags:   slice.Flatten(serveFlags, cmd.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Pipeline", &cmd.pipeline),
				slog.Any("GitHubApp", cmd.githubApp),
				slog.Any("BigQuery", &cmd.bigQuery),
				slog.Any("Sentry", &cmd.sentry),
			)

			pipeline, err := cmd.pipeline.Load()
			if err != nil {
				return err
			}

			clients, err := cmd.BuildClients(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(clients)
			s := server.New(uc,
				server.WithPipeline(pipeline),
				server.WithGitHubTarget(*cmd.githubApp.Target()),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
