package directives

import (
	"fmt"
	"strings"
)

// Directive is one typed instruction from the model
type Directive interface {
	Kind() Kind
	isDirective()
}

// Kind is the wire discriminator of a Directive
type Kind string

const (
	KindRun              Kind = "run"
	KindMessage          Kind = "message"
	KindReason           Kind = "reason"
	KindFileRead         Kind = "file-read"
	KindFileWriteInsert  Kind = "file-write-add"
	KindFileWriteReplace Kind = "file-write-replace"
	KindEnd              Kind = "end"
)

var Kinds = []Kind{
	KindRun,
	KindMessage,
	KindReason,
	KindFileRead,
	KindFileWriteInsert,
	KindFileWriteReplace,
	KindEnd,
}

// Run executes Command with the platform shell
type Run struct {
	Command string `json:"command"`
}

// Message is shown to the operator
type Message struct {
	Text string `json:"text"`
}

// Reason is the model's scratchpad, only traced
type Reason struct {
	Text string `json:"text"`
}

type FileRead struct {
	Path string `json:"path"`
}

// FileWriteInsert inserts Content before the 0-based line Start
type FileWriteInsert struct {
	Path    string `json:"path"`
	Start   int    `json:"start"`
	Content string `json:"content"`
}

// FileWriteReplace replaces lines [Start, End) with Content. Indices are 1-based, 0 means the first line.
type FileWriteReplace struct {
	Path    string `json:"path"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Content string `json:"content"`
}

// End terminates the session after the current round
type End struct {
	Reason string `json:"reason,omitempty"`
}

func (Run) Kind() Kind              { return KindRun }
func (Message) Kind() Kind          { return KindMessage }
func (Reason) Kind() Kind           { return KindReason }
func (FileRead) Kind() Kind         { return KindFileRead }
func (FileWriteInsert) Kind() Kind  { return KindFileWriteInsert }
func (FileWriteReplace) Kind() Kind { return KindFileWriteReplace }
func (End) Kind() Kind              { return KindEnd }

func (Run) isDirective()              {}
func (Message) isDirective()          {}
func (Reason) isDirective()           {}
func (FileRead) isDirective()         {}
func (FileWriteInsert) isDirective()  {}
func (FileWriteReplace) isDirective() {}
func (End) isDirective()              {}

// normalizePath trims a parsed path. ok is false when nothing is left.
func normalizePath(path string) (_ string, ok bool) {
	path = strings.TrimSpace(path)
	return path, path != ""
}

// checkPath rejects paths that parse back differently
func checkPath(kind Kind, path string) error {
	if normalized, ok := normalizePath(path); !ok || normalized != path {
		return fmt.Errorf("%s: path must be non-empty without surrounding whitespace: %q", kind, path)
	}
	return nil
}
