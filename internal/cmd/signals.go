package cmd

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var signalSetup sync.Once

// RestoreDefaultSignals resets SIGINT and SIGPIPE to their default
// dispositions before the pipeline runs. An interrupt then terminates the
// process immediately with the conventional signal exit status, like diff,
// instead of being masked by inherited handlers. Performed once; later
// calls are no-ops.
func RestoreDefaultSignals() {
	signalSetup.Do(func() {
		signal.Reset(os.Interrupt, syscall.SIGPIPE)
	})
}
