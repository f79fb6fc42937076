package directives

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSONParse(t *testing.T) {
	text := `[
		{"type": "reason", "text": "check"},
		{"type": "run", "command": "echo hi", "comment": "ignored"},
		{"type": "file-write-replace", "path": "a.txt", "start": 0, "end": 3, "content": "x"},
		{"type": "end", "reason": null}
	]`
	ds, err := Parse(ProtocolJSON, text)
	if err != nil {
		t.Fatal(err)
	}
	expected := []Directive{
		Reason{Text: "check"},
		Run{Command: "echo hi"},
		FileWriteReplace{Path: "a.txt", Start: 0, End: 3, Content: "x"},
		End{},
	}
	if diff := cmp.Diff(expected, ds); diff != "" {
		t.Fatal(diff)
	}
}

func TestJSONErrors(t *testing.T) {
	for _, text := range []string{
		`not json`,
		`{"type": "run", "command": "ls"}`,
		`"run"`,
		`[1]`,
		`[{"command": "ls"}]`,
		`[{"type": 1}]`,
		`[{"type": "shell", "command": "ls"}]`,
		`[{"type": "run"}]`,
		`[{"type": "run", "command": null}]`,
		`[{"type": "run", "command": ["ls"]}]`,
		`[{"type": "message"}]`,
		`[{"type": "file-read", "path": 1}]`,
		`[{"type": "file-read", "path": ""}]`,
		`[{"type": "file-read", "path": " \n "}]`,
		`[{"type": "file-write-add", "path": "  ", "start": 1, "content": "x"}]`,
		`[{"type": "file-write-replace", "path": "", "start": 1, "end": 2, "content": "x"}]`,
		`[{"type": "file-write-add", "path": "a", "content": "x"}]`,
		`[{"type": "file-write-add", "path": "a", "start": "1", "content": "x"}]`,
		`[{"type": "file-write-add", "path": "a", "start": -1, "content": "x"}]`,
		`[{"type": "file-write-add", "path": "a", "start": 1.5, "content": "x"}]`,
		`[{"type": "file-write-add", "path": "a", "start": 1}]`,
		`[{"type": "file-write-replace", "path": "a", "start": 1, "content": "x"}]`,
		`[{"type": "end", "reason": 3}]`,
		`[{"type": "end"}] [{"type": "end"}]`,
		`[{"type": "end"},]`,
		`[{"type": "end"}`,
	} {
		expectProtocolError(t, ProtocolJSON, text)
	}
}

func TestJSONNoPartialSalvage(t *testing.T) {
	text := `[
		{"type": "message", "text": "fine"},
		{"type": "file-write-add", "path": "a", "start": -2, "content": "x"}
	]`
	err := expectProtocolError(t, ProtocolJSON, text)
	if !strings.Contains(err.Reason, "element 1") {
		t.Fatalf("got %s", err.Reason)
	}
	if err.Offset <= 0 {
		t.Fatalf("got %d", err.Offset)
	}
}

func TestEncodeJSON(t *testing.T) {
	bs, err := EncodeJSON([]Directive{
		Run{Command: "cat a > b"},
		End{},
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := `[
  {
    "type": "run",
    "command": "cat a > b"
  },
  {
    "type": "end"
  }
]`
	if string(bs) != expected {
		t.Fatalf("got %s", bs)
	}
}
