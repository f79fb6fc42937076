package executors

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"

	"go.uber.org/goleak"
)

func testConsole() (Console, *bytes.Buffer, *bytes.Buffer) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	return Console{
		In:  strings.NewReader(""),
		Out: out,
		Err: errOut,
	}, out, errOut
}

func TestRunCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip()
	}
	defer goleak.VerifyNone(t)

	console, out, errOut := testConsole()
	feedback, err := runCommand(t.Context(), console, "echo out; echo err >&2; printf partial")
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "out\npartial\n" {
		t.Fatalf("got %q", out.String())
	}
	if errOut.String() != "err\n" {
		t.Fatalf("got %q", errOut.String())
	}
	cmd := "echo out; echo err >&2; printf partial"
	expected := "The output of the command `" + cmd + "` is:\n```\nout\npartial\n```\n\n" +
		"The error of the command `" + cmd + "` is:\n```\nerr\n```\n\n" +
		"The status of the command `" + cmd + "` is:\n```\nexit status 0\n```"
	if feedback != expected {
		t.Fatalf("got %s", feedback)
	}
}

func TestRunCommandNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip()
	}
	defer goleak.VerifyNone(t)

	console, _, _ := testConsole()
	feedback, err := runCommand(t.Context(), console, "exit 3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(feedback, "```\nexit status 3\n```") {
		t.Fatalf("got %s", feedback)
	}
}

func TestRunCommandStdin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip()
	}
	defer goleak.VerifyNone(t)

	console, out, _ := testConsole()
	console.In = strings.NewReader("from operator\n")
	if _, err := runCommand(t.Context(), console, "cat"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "from operator\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestRunCommandCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	console, _, _ := testConsole()
	if _, err := runCommand(ctx, console, "echo never"); err == nil {
		t.Fatal("should fail")
	}
}
