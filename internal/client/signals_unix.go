//go:build unix

package client

import (
	"os"
	"syscall"
)

// hideSignals mark the client as hidden, which pushes at once.
var hideSignals = []os.Signal{syscall.SIGUSR1}
