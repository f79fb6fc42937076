package directives

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func parseJSON(text string) ([]Directive, error) {
	fail := func(offset int64, format string, args ...any) error {
		return protocolError(ProtocolJSON, int(offset), format, args...)
	}

	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		return nil, fail(decoder.InputOffset(), "%v", jsonErrorReason(err))
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		return nil, fail(0, "expected an array of directives")
	}

	ret := []Directive{}
	for decoder.More() {
		offset := decoder.InputOffset()
		var element any
		if err := decoder.Decode(&element); err != nil {
			return nil, fail(offsetOf(err, offset), "%v", jsonErrorReason(err))
		}
		object, ok := element.(map[string]any)
		if !ok {
			return nil, fail(offset, "element %d is not an object", len(ret))
		}
		directive, err := decodeObject(object)
		if err != nil {
			return nil, fail(offset, "element %d: %v", len(ret), err)
		}
		ret = append(ret, directive)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, fail(decoder.InputOffset(), "%v", jsonErrorReason(err))
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fail(decoder.InputOffset(), "unexpected data after the array")
	}

	return ret, nil
}

func offsetOf(err error, fallback int64) int64 {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Offset
	}
	return fallback
}

func jsonErrorReason(err error) string {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "unexpected end of input"
	}
	return err.Error()
}

type object map[string]any

func decodeObject(o object) (Directive, error) {
	t, ok := o["type"]
	if !ok {
		return nil, fmt.Errorf("missing field %q", "type")
	}
	kind, ok := t.(string)
	if !ok {
		return nil, fmt.Errorf("field %q must be a string", "type")
	}

	switch Kind(kind) {

	case KindRun:
		command, err := o.str("command")
		if err != nil {
			return nil, err
		}
		return Run{Command: command}, nil

	case KindMessage:
		text, err := o.str("text")
		if err != nil {
			return nil, err
		}
		return Message{Text: text}, nil

	case KindReason:
		text, err := o.str("text")
		if err != nil {
			return nil, err
		}
		return Reason{Text: text}, nil

	case KindFileRead:
		path, err := o.path()
		if err != nil {
			return nil, err
		}
		return FileRead{Path: path}, nil

	case KindFileWriteInsert:
		var d FileWriteInsert
		var err error
		if d.Path, err = o.path(); err != nil {
			return nil, err
		}
		if d.Start, err = o.index("start"); err != nil {
			return nil, err
		}
		if d.Content, err = o.str("content"); err != nil {
			return nil, err
		}
		return d, nil

	case KindFileWriteReplace:
		var d FileWriteReplace
		var err error
		if d.Path, err = o.path(); err != nil {
			return nil, err
		}
		if d.Start, err = o.index("start"); err != nil {
			return nil, err
		}
		if d.End, err = o.index("end"); err != nil {
			return nil, err
		}
		if d.Content, err = o.str("content"); err != nil {
			return nil, err
		}
		return d, nil

	case KindEnd:
		var d End
		if v, ok := o["reason"]; ok && v != nil {
			reason, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("field %q must be a string", "reason")
			}
			d.Reason = reason
		}
		return d, nil

	}

	return nil, fmt.Errorf("unknown directive type %q", kind)
}

func (o object) str(name string) (string, error) {
	v, ok := o[name]
	if !ok {
		return "", fmt.Errorf("missing field %q", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string", name)
	}
	return s, nil
}

func (o object) path() (string, error) {
	s, err := o.str("path")
	if err != nil {
		return "", err
	}
	path, ok := normalizePath(s)
	if !ok {
		return "", fmt.Errorf("field %q must not be empty", "path")
	}
	return path, nil
}

func (o object) index(name string) (int, error) {
	v, ok := o[name]
	if !ok {
		return 0, fmt.Errorf("missing field %q", name)
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("field %q must be a number", name)
	}
	i, err := strconv.Atoi(n.String())
	if err != nil {
		return 0, fmt.Errorf("field %q must be an integer: %s", name, n)
	}
	if i < 0 {
		return 0, fmt.Errorf("field %q must not be negative: %d", name, i)
	}
	return i, nil
}

type wireRun struct {
	Type    Kind   `json:"type"`
	Command string `json:"command"`
}

type wireText struct {
	Type Kind   `json:"type"`
	Text string `json:"text"`
}

type wireFileRead struct {
	Type Kind   `json:"type"`
	Path string `json:"path"`
}

type wireFileWriteInsert struct {
	Type    Kind   `json:"type"`
	Path    string `json:"path"`
	Start   int    `json:"start"`
	Content string `json:"content"`
}

type wireFileWriteReplace struct {
	Type    Kind   `json:"type"`
	Path    string `json:"path"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Content string `json:"content"`
}

type wireEnd struct {
	Type   Kind   `json:"type"`
	Reason string `json:"reason,omitempty"`
}

func toWire(d Directive) (any, error) {
	switch d := d.(type) {
	case Run:
		return wireRun{KindRun, d.Command}, nil
	case Message:
		return wireText{KindMessage, d.Text}, nil
	case Reason:
		return wireText{KindReason, d.Text}, nil
	case FileRead:
		if err := checkPath(KindFileRead, d.Path); err != nil {
			return nil, err
		}
		return wireFileRead{KindFileRead, d.Path}, nil
	case FileWriteInsert:
		if err := checkPath(KindFileWriteInsert, d.Path); err != nil {
			return nil, err
		}
		return wireFileWriteInsert{KindFileWriteInsert, d.Path, d.Start, d.Content}, nil
	case FileWriteReplace:
		if err := checkPath(KindFileWriteReplace, d.Path); err != nil {
			return nil, err
		}
		return wireFileWriteReplace{KindFileWriteReplace, d.Path, d.Start, d.End, d.Content}, nil
	case End:
		return wireEnd{KindEnd, d.Reason}, nil
	}
	return nil, fmt.Errorf("unknown directive: %T", d)
}

// EncodeJSON renders directives as an indented JSON array
func EncodeJSON(ds []Directive) ([]byte, error) {
	elements := make([]any, 0, len(ds))
	for _, d := range ds {
		w, err := toWire(d)
		if err != nil {
			return nil, err
		}
		elements = append(elements, w)
	}
	buf := new(bytes.Buffer)
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(elements); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
