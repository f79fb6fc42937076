package logs

import (
	"io"
	"os"
)

// Writer receives human readable log lines
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

// FileSink receives JSON log records of one run. nil disables it.
type FileSink io.Writer

func (Module) FileSink() FileSink {
	return nil
}
