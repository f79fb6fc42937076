package executors

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", command)
	}
	return exec.CommandContext(ctx, "sh", "-c", command)
}

// runCommand runs command in the platform shell, mirroring its streams to the console line by line
func runCommand(ctx context.Context, console Console, command string) (string, error) {
	cmd := shellCommand(ctx, command)
	cmd.Stdin = console.In
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("run %q: %w", command, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", fmt.Errorf("run %q: %w", command, err)
	}
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("run %q: %w", command, err)
	}

	// all reads must finish before Wait closes the pipes
	var outBuf, errBuf strings.Builder
	group := new(errgroup.Group)
	group.Go(func() error {
		return drain(stdout, console.Out, &outBuf)
	})
	group.Go(func() error {
		return drain(stderr, console.Err, &errBuf)
	})
	drainErr := group.Wait()
	waitErr := cmd.Wait()

	if drainErr != nil {
		return "", fmt.Errorf("read output of %q: %w", command, drainErr)
	}
	var status string
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return "", fmt.Errorf("wait %q: %w", command, waitErr)
		}
		status = exitErr.ProcessState.String()
	} else {
		status = cmd.ProcessState.String()
	}

	return RunFeedback(command, outBuf.String(), errBuf.String(), status), nil
}

func drain(r io.Reader, echo io.Writer, buf *strings.Builder) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}
			buf.WriteString(line)
			if echo != nil {
				_, _ = io.WriteString(echo, line)
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func RunFeedback(command, stdout, stderr, status string) string {
	block := func(what, content string) string {
		return fmt.Sprintf("The %s of the command `%s` is:\n```\n%s\n```",
			what, command, strings.TrimSuffix(content, "\n"))
	}
	return strings.Join([]string{
		block("output", stdout),
		block("error", stderr),
		block("status", status),
	}, "\n\n")
}
