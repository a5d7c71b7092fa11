//go:build !unix

package client

import "os"

var hideSignals []os.Signal
