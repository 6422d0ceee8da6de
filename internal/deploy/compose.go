package deploy

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

// execCommand wraps exec.Command for testability.
var execCommand = exec.Command

// ComposeUp applies the manifest with a single docker compose
// invocation. The command's exit status is the success signal; there
// is no retry and no partial-success interpretation.
func ComposeUp(logger *log.Logger, composeFile, workDir string) error {
	if _, err := exec.LookPath("docker"); err != nil {
		return fmt.Errorf("docker not found in PATH: %w", err)
	}

	logger.Debug("applying manifest", "file", composeFile, "dir", workDir)

	cmd := execCommand("docker", "compose", "-f", composeFile, "up", "-d")
	cmd.Dir = workDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker compose up: %w", err)
	}

	return nil
}
