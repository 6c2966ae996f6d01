package process

import (
	"strings"
	"time"
)

// Command is one external tool invocation. Binary is looked up on PATH.
type Command struct {
	Binary string
	Args   []string
	// Dir is the working directory; empty inherits the caller's.
	Dir string
	// GracePeriod separates SIGTERM from SIGKILL on cancellation. Zero means 5s.
	GracePeriod time.Duration
}

// String renders the command line for logs.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Binary
	}
	return c.Binary + " " + strings.Join(c.Args, " ")
}
