package display

import (
	"io"

	"github.com/teranos/jobs/errors"
)

// ANSI: move cursor home, clear screen
const clearSequence = "\033[H\033[2J"

// ClearScreen clears the terminal behind w
func ClearScreen(w io.Writer) error {
	if _, err := io.WriteString(w, clearSequence); err != nil {
		return errors.Wrap(err, "failed to clear screen")
	}
	return nil
}
