// Package command drives external binaries: the test runner, the
// toolchain steps, and the publish command.
package command

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipgate/pkg/domain/interfaces"
	"github.com/m-mizutani/shipgate/pkg/domain/types"
	"github.com/m-mizutani/shipgate/pkg/utils/logging"
)

type client struct{}

var _ interfaces.CommandRunner = (*client)(nil)

func New() interfaces.CommandRunner {
	return &client{}
}

func (x *client) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "empty argv")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	startedAt := time.Now()
	err := cmd.Run()

	logging.From(ctx).Debug("executed command",
		slog.Any("argv", argv),
		slog.Duration("elapsed", time.Since(startedAt)),
		slog.Int("stdout.len", stdout.Len()),
		slog.Int("stderr.len", stderr.Len()),
	)

	if err != nil {
		return goerr.Wrap(err, "failed to execute command",
			goerr.V("argv", argv),
			goerr.V("stdout", stdout.String()),
			goerr.V("stderr", stderr.String()),
		)
	}

	return nil
}
