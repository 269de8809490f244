package cli

import (
	"fmt"
	"io"
)

// writerNotifier surfaces step outcomes on the command's output streams
type writerNotifier struct {
	out io.Writer
	err io.Writer
}

func (n *writerNotifier) Success(message string) {
	fmt.Fprintf(n.out, "OK: %s\n", message)
}

func (n *writerNotifier) Error(message string) {
	fmt.Fprintf(n.err, "ERROR: %s\n", message)
}
