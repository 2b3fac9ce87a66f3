package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version. It can be overridden at build time:
//
//	go build -ldflags "-X github.com/agbru/bitadd/internal/app.Version=v1.2.3"
var Version = "1.0.0"

// HasVersionFlag reports whether the arguments request the version banner.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner to the given writer.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "bitadd %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
