package directives

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarkupParse(t *testing.T) {
	text := `
<reason>need the listing</reason>
<run>ls -l</run>

<file-write-replace>
  <content>line one
line two
</content>
  <path> b.txt </path>
  <end> 4 </end>
  <start>2</start>
</file-write-replace>
<end></end>
`
	ds, err := Parse(ProtocolMarkup, text)
	if err != nil {
		t.Fatal(err)
	}
	expected := []Directive{
		Reason{Text: "need the listing"},
		Run{Command: "ls -l"},
		FileWriteReplace{
			Path:    "b.txt",
			Start:   2,
			End:     4,
			Content: "line one\nline two\n",
		},
		End{},
	}
	if diff := cmp.Diff(expected, ds); diff != "" {
		t.Fatal(diff)
	}
}

func TestMarkupContentMayContainOtherTags(t *testing.T) {
	ds, err := Parse(ProtocolMarkup, `<file-write-add><path>x.html</path><start>0</start><content><run>no</run></file-write-add></content></file-write-add>`)
	if err != nil {
		t.Fatal(err)
	}
	expected := []Directive{
		FileWriteInsert{
			Path:    "x.html",
			Content: "<run>no</run></file-write-add>",
		},
	}
	if diff := cmp.Diff(expected, ds); diff != "" {
		t.Fatal(diff)
	}
}

func TestMarkupErrors(t *testing.T) {
	for text, offset := range map[string]int{
		`hello <run>ls</run>`:     0,
		`<run>ls</run> trailing`:  14,
		`<shell>ls</shell>`:       0,
		`</run>`:                  0,
		`<Run>ls</Run>`:           0,
		`<run>ls</run><run>pwd`:   13,
		`<file-read></file-read>`: 0,
		`<file-read><path>a</path><start>1</start></file-read>`:                                      25,
		`<file-read><path>a</path><path>b</path></file-read>`:                                        25,
		`<file-read><name>a</name></file-read>`:                                                      11,
		`<file-read>junk<path>a</path></file-read>`:                                                  11,
		`<file-read><path> </path></file-read>`:                                                      11,
		`<file-write-add><path>a</path><start>x</start><content></content></file-write-add>`:         30,
		`<file-write-add><path>a</path><start>-1</start><content></content></file-write-add>`:        30,
		`<file-write-add><path>a</path><start></start><content></content></file-write-add>`:          30,
		`<file-write-replace><path>a</path><start>1</start><content></content></file-write-replace>`: 0,
	} {
		err := expectProtocolError(t, ProtocolMarkup, text)
		if err.Offset != offset {
			t.Fatalf("%q: got offset %d, %s", text, err.Offset, err.Reason)
		}
	}
}

func TestEncodeMarkup(t *testing.T) {
	text, err := EncodeMarkup([]Directive{
		Run{Command: "ls"},
		FileRead{Path: "a.txt"},
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := "<run>ls</run>\n<file-read>\n<path>a.txt</path>\n</file-read>"
	if text != expected {
		t.Fatalf("got %q", text)
	}

	if _, err := EncodeMarkup([]Directive{
		Message{Text: "see </message>"},
	}); err == nil {
		t.Fatal("should fail")
	}
}
