package chesscore

import (
	"os"

	"github.com/op/go-logging"
)

// logging.go wires up a package-level logger the way FrankyGo's movegen
// package does (a package *logging.Logger populated at init time), per
// SPEC_FULL.md section 4.10. The core itself only logs at Debug level —
// generation and perft have no user-visible failure modes (section 7), so
// nothing here rises above diagnostic noise during normal operation.

var log = logging.MustGetLogger("chesscore")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{shortfunc} > %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
}

// SetLogLevel lets callers (the CLI driver, tests) raise or lower the
// package's log verbosity at runtime.
func SetLogLevel(level logging.Level) {
	logging.SetLevel(level, "chesscore")
}
