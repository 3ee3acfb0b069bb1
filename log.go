package quizsolver

import (
	"io"
	"log"
	"os"
)

// verboseMode gates VerboseLog
var verboseMode bool

var verboseLogger = log.New(os.Stderr, "quizsolver: ", log.LstdFlags)

// SetVerbose turns per-quiz solver logging on or off
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// SetLogOutput redirects verbose output, mainly for tests
func SetLogOutput(w io.Writer) {
	verboseLogger.SetOutput(w)
}

// VerboseLog logs only when verbose mode is enabled
func VerboseLog(format string, v ...interface{}) {
	if verboseMode {
		verboseLogger.Printf(format, v...)
	}
}
