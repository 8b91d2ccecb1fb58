// Package editor launches the user's preferred text editor on a store file.
package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/dotconf/internal/errors"
)

// Open runs the user's editor on path and blocks until it exits. The
// editor inherits the terminal so full-screen editors work.
func Open(path string) error {
	name, extra := detectEditor()

	cmd := exec.Command(name, append(extra, path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", name)
	}

	return nil
}

// detectEditor picks the editor command. $EDITOR wins, then $VISUAL,
// then nano if installed, then vi. The variables may carry arguments
// ("code --wait"), which are returned separately from the binary name.
func detectEditor() (name string, args []string) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		fields := strings.Fields(os.Getenv(env))
		if len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano", nil
	}

	return "vi", nil
}
