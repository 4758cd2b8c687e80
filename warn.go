package draggable

import (
	"fmt"
	"os"
)

// warnf reports a recoverable misconfiguration to stderr. Invalid option
// combinations degrade to a disabled feature rather than an error, so
// warnings are the only signal the caller gets.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[draggable] warning: "+format+"\n", args...)
}
