package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
prompt?: {
	file_path?: string
	inline_text?: string
}
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	var str string
	if err := loader.AssignFirst("str", &str); err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	if err := loader.AssignFirst("list", &list); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	var prompt struct {
		FilePath   string `json:"file_path"`
		InlineText string `json:"inline_text"`
	}
	if err := loader.AssignFirst("prompt", &prompt); err != nil {
		t.Fatal(err)
	}
	if prompt.InlineText != "hello" || prompt.FilePath != "" {
		t.Fatalf("got %+v", prompt)
	}

	err := loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	strs = strs[:0]
	for str := range All[string](loader, "str") {
		strs = append(strs, str)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test2.cue", "testdata/test.cue"}, testSchema)
	if str := First[string](loader, "str"); str != "foo" {
		t.Fatalf("got %v", str)
	}
	if list := First[[]int](loader, "list"); len(list) != 3 {
		t.Fatalf("got %v", list)
	}
	if str := First[string](loader, "nothing"); str != "" {
		t.Fatalf("got %v", str)
	}
}

func TestEmptyLoader(t *testing.T) {
	loader := NewLoader(nil, "")
	if str := First[string](loader, "str"); str != "" {
		t.Fatalf("got %v", str)
	}
	var zero Loader
	if str := First[string](zero, "str"); str != "" {
		t.Fatalf("got %v", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}
