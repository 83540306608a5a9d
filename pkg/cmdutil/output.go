package cmdutil

import (
	"fmt"
	"io"
	"os"
)

// Fprintf writes the formatted string to w, falling back to stdout when w
// is nil. Write errors are ignored, output here is best effort.
func Fprintf(w io.Writer, format string, args ...any) {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, format, args...) //nolint:errcheck
}
