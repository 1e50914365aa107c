//go:build windows

package main

import "os"

// SIGTERM is never delivered on Windows.
var shutdownSignals = []os.Signal{os.Interrupt}
