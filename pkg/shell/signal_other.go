//go:build !unix

package shell

import "os"

var exitSignals = []os.Signal{os.Interrupt}

func signalStatus(os.Signal) int { return 130 }
