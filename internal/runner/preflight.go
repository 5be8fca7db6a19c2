package runner

import (
	"io"
	"os/exec"

	"github.com/harrison/clang-lint/internal/lint"
)

// Preflight verifies that each executable can run at all by invoking it
// with --version, stdout discarded. It runs before any file is touched so a
// missing or broken tool fails the run immediately instead of once per
// file. Any failure is returned as *lint.ToolError.
func Preflight(executables ...string) error {
	for _, exe := range executables {
		inv := []string{exe, "--version"}
		cmd := exec.Command(inv[0], inv[1])
		cmd.Stdout = io.Discard

		if err := cmd.Run(); err != nil {
			if toolErr := startError(inv, err); toolErr != nil {
				return toolErr
			}
			if exitErr := exitFailure(err); exitErr != nil {
				return &lint.ToolError{Message: exitMessage(inv, exitErr)}
			}
			return err
		}
	}
	return nil
}
