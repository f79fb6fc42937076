package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/fash/cmds"
	"github.com/reusee/fash/logs"
	"github.com/reusee/fash/modes"
	"github.com/reusee/fash/sessions"
	"golang.org/x/term"
)

var taskFlag = cmds.Var[string]("task", "the task to complete")

func main() {
	cmds.Execute(os.Args[1:])
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	task := strings.TrimSpace(*taskFlag)
	if task == "" {
		var err error
		task, err = readTask(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
	}

	scope := dscope.New(
		new(sessions.Module),
		modes.ForProduction(),
	)

	logFile, err := openLogFile(scope)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
		scope = scope.Fork(
			func() logs.FileSink {
				return logFile
			},
		)
	}

	return dscope.Get[sessions.Run](scope)(ctx, task)
}

func readTask(in *os.File, out io.Writer) (string, error) {
	var content string
	if term.IsTerminal(int(in.Fd())) {
		fmt.Fprint(out, "Enter your task: ")
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read task: %w", err)
		}
		content = line
	} else {
		bs, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read task: %w", err)
		}
		content = string(bs)
	}
	task := strings.TrimSpace(content)
	if task == "" {
		return "", errors.New("task is required")
	}
	return task, nil
}

func openLogFile(scope dscope.Scope) (file *os.File, err error) {
	dir := dscope.Get[sessions.LogDir](scope)
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(string(dir), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err = os.OpenFile(
		filepath.Join(string(dir), sessions.LogFileName(time.Now(), dscope.Get[sessions.SessionID](scope))),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0644,
	)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
