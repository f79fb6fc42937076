package executors

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Console is the operator's terminal
type Console struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func (Module) Console() Console {
	return Console{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

const (
	ColorReset   = "\033[0m"
	ColorMessage = "\033[1;36m"
)

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func (c Console) PrintMessage(text string) error {
	prefix := "Bot:"
	if isTerminal(c.Out) {
		prefix = ColorMessage + prefix + ColorReset
	}
	_, err := fmt.Fprintf(c.Out, "%s %s\n", prefix, text)
	return err
}
