package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipgate/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func TestPipelineLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shipgate.yml")
	body := []byte(`
runner: node_modules/.bin/mocha
suites:
  - test/api.js
  - test/auth.js
publish:
  - firebase
  - deploy
`)
	gt.NoError(t, os.WriteFile(path, body, 0600))

	t.Run("loads pipeline from file", func(t *testing.T) {
		pipelineConfig := &config.Pipeline{}
		cmd := &cli.Command{
			Flags: pipelineConfig.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				return nil
			},
		}
		gt.NoError(t, cmd.Run(context.Background(), []string{"test", "--pipeline", path}))

		pipeline := gt.R1(pipelineConfig.Load()).NoError(t)
		gt.V(t, pipeline.Runner).Equal("node_modules/.bin/mocha")
		gt.A(t, pipeline.Suites).Length(2)
	})

	t.Run("runner flag overrides the definition", func(t *testing.T) {
		pipelineConfig := &config.Pipeline{}
		cmd := &cli.Command{
			Flags: pipelineConfig.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				return nil
			},
		}
		gt.NoError(t, cmd.Run(context.Background(), []string{
			"test", "--pipeline", path, "--runner", "mocha-v11",
		}))

		pipeline := gt.R1(pipelineConfig.Load()).NoError(t)
		gt.V(t, pipeline.Runner).Equal("mocha-v11")
	})

	t.Run("missing file is an error", func(t *testing.T) {
		pipelineConfig := &config.Pipeline{}
		cmd := &cli.Command{
			Flags: pipelineConfig.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				return nil
			},
		}
		gt.NoError(t, cmd.Run(context.Background(), []string{
			"test", "--pipeline", filepath.Join(t.TempDir(), "no-such.yml"),
		}))

		_, err := pipelineConfig.Load()
		gt.Error(t, err)
	})
}
