// Package editor implements $EDITOR round-trip editing of tasks as TOML
// frontmatter plus a notes body.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin is a terminal. Non-interactive runs
// (scripts, pipes) skip the editor and take field flags instead.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Edit blocks while the user edits the file at path in $EDITOR, falling back
// to vi. A nonzero editor exit aborts the pending create or update.
func Edit(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("run editor %s: %w", editor, err)
	}
	return nil
}
