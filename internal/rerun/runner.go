package rerun

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Runner invokes one simulation attempt writing to outputPath. Tests can
// substitute a mock.
type Runner interface {
	Run(ctx context.Context, outputPath string) error
}

// ExecRunner runs the configured shell command via bash, passing the
// output path as $1.
type ExecRunner struct {
	Command string
	Dir     string
}

func (r *ExecRunner) Run(ctx context.Context, outputPath string) error {
	cmd := exec.CommandContext(ctx, "bash", "-c", r.Command+` "$1"`, "battleview-rerun", outputPath)
	cmd.Dir = r.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	code, err := exitCode(cmd.Run())
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("simulation command exited with code %d", code)
	}
	return nil
}

// exitCode extracts an exit code from a command error.
// Returns (code, nil) for ExitError, (0, err) for other errors, (0, nil) for nil.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
