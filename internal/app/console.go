package app

import (
	"io"
	"os"
)

// consoleWriter is swapped out in tests to keep output quiet.
var consoleWriter = func() io.Writer { return os.Stderr }
