package directives

import (
	"fmt"
	"strconv"
	"strings"
)

// markup grammar:
//
//	document     := ws { element ws } EOF
//	element      := text-element | file-element
//	text-element := "<" T ">" raw "</" T ">"
//	file-element := "<" F ">" ws { field ws } "</" F ">"
//	field        := "<" N ">" raw "</" N ">"
//	raw          := text up to the first closing tag of the same name
type markupParser struct {
	src string
	pos int
}

const (
	fieldPath    = "path"
	fieldStart   = "start"
	fieldEnd     = "end"
	fieldContent = "content"
)

var fileElementFields = map[Kind][]string{
	KindFileRead:         {fieldPath},
	KindFileWriteInsert:  {fieldPath, fieldStart, fieldContent},
	KindFileWriteReplace: {fieldPath, fieldStart, fieldEnd, fieldContent},
}

func parseMarkup(text string) ([]Directive, error) {
	p := &markupParser{
		src: text,
	}
	return p.document()
}

func (p *markupParser) fail(offset int, format string, args ...any) error {
	return protocolError(ProtocolMarkup, offset, format, args...)
}

func (p *markupParser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *markupParser) document() ([]Directive, error) {
	ret := []Directive{}
	for {
		p.skipSpace()
		if p.pos == len(p.src) {
			return ret, nil
		}
		d, err := p.element()
		if err != nil {
			return nil, err
		}
		ret = append(ret, d)
	}
}

func (p *markupParser) openTag() (string, error) {
	start := p.pos
	if p.src[p.pos] != '<' {
		return "", p.fail(start, "unexpected text outside of tags")
	}
	end := strings.IndexByte(p.src[p.pos+1:], '>')
	if end < 0 {
		return "", p.fail(start, "unterminated tag")
	}
	name := p.src[p.pos+1 : p.pos+1+end]
	if strings.HasPrefix(name, "/") {
		return "", p.fail(start, "unexpected closing tag <%s>", name)
	}
	if !validTagName(name) {
		return "", p.fail(start, "malformed tag <%s>", name)
	}
	p.pos += end + 2
	return name, nil
}

func validTagName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c >= 'a' && c <= 'z' || c == '-') {
			return false
		}
	}
	return true
}

func (p *markupParser) raw(name string, tagOffset int) (string, error) {
	closing := "</" + name + ">"
	i := strings.Index(p.src[p.pos:], closing)
	if i < 0 {
		return "", p.fail(tagOffset, "tag <%s> is not closed", name)
	}
	content := p.src[p.pos : p.pos+i]
	p.pos += i + len(closing)
	return content, nil
}

func (p *markupParser) element() (Directive, error) {
	start := p.pos
	name, err := p.openTag()
	if err != nil {
		return nil, err
	}

	switch kind := Kind(name); kind {

	case KindRun, KindMessage, KindReason, KindEnd:
		text, err := p.raw(name, start)
		if err != nil {
			return nil, err
		}
		switch kind {
		case KindRun:
			return Run{Command: text}, nil
		case KindMessage:
			return Message{Text: text}, nil
		case KindReason:
			return Reason{Text: text}, nil
		default:
			return End{Reason: text}, nil
		}

	case KindFileRead, KindFileWriteInsert, KindFileWriteReplace:
		fields, err := p.fields(kind, start)
		if err != nil {
			return nil, err
		}
		return p.fileElement(kind, fields, start)

	}

	return nil, p.fail(start, "unknown tag <%s>", name)
}

type fieldValue struct {
	text   string
	offset int
}

func (p *markupParser) fields(kind Kind, start int) (map[string]fieldValue, error) {
	allowed := fileElementFields[kind]
	closing := "</" + string(kind) + ">"
	values := make(map[string]fieldValue)

	for {
		p.skipSpace()
		if p.pos == len(p.src) {
			return nil, p.fail(start, "tag <%s> is not closed", kind)
		}
		if strings.HasPrefix(p.src[p.pos:], closing) {
			p.pos += len(closing)
			break
		}

		fieldStart := p.pos
		name, err := p.openTag()
		if err != nil {
			return nil, err
		}
		if !isField(name) {
			return nil, p.fail(fieldStart, "unknown tag <%s> in <%s>", name, kind)
		}
		if !contains(allowed, name) {
			return nil, p.fail(fieldStart, "field <%s> is not allowed in <%s>", name, kind)
		}
		if _, ok := values[name]; ok {
			return nil, p.fail(fieldStart, "duplicate field <%s> in <%s>", name, kind)
		}
		text, err := p.raw(name, fieldStart)
		if err != nil {
			return nil, err
		}
		values[name] = fieldValue{
			text:   text,
			offset: fieldStart,
		}
	}

	for _, name := range allowed {
		if _, ok := values[name]; !ok {
			return nil, p.fail(start, "missing field <%s> in <%s>", name, kind)
		}
	}

	return values, nil
}

func isField(name string) bool {
	switch name {
	case fieldPath, fieldStart, fieldEnd, fieldContent:
		return true
	}
	return false
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func (p *markupParser) fileElement(kind Kind, fields map[string]fieldValue, start int) (Directive, error) {
	path, ok := normalizePath(fields[fieldPath].text)
	if !ok {
		return nil, p.fail(fields[fieldPath].offset, "empty path in <%s>", kind)
	}

	index := func(name string) (int, error) {
		v := fields[name]
		s := strings.TrimSpace(v.text)
		if s == "" {
			return 0, p.fail(v.offset, "empty <%s>", name)
		}
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return 0, p.fail(v.offset, "<%s> must be a non-negative integer: %q", name, s)
			}
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, p.fail(v.offset, "<%s> out of range: %q", name, s)
		}
		return n, nil
	}

	switch kind {

	case KindFileRead:
		return FileRead{Path: path}, nil

	case KindFileWriteInsert:
		n, err := index(fieldStart)
		if err != nil {
			return nil, err
		}
		return FileWriteInsert{
			Path:    path,
			Start:   n,
			Content: fields[fieldContent].text,
		}, nil

	case KindFileWriteReplace:
		startIndex, err := index(fieldStart)
		if err != nil {
			return nil, err
		}
		endIndex, err := index(fieldEnd)
		if err != nil {
			return nil, err
		}
		return FileWriteReplace{
			Path:    path,
			Start:   startIndex,
			End:     endIndex,
			Content: fields[fieldContent].text,
		}, nil

	}

	return nil, p.fail(start, "unknown tag <%s>", kind)
}

// EncodeMarkup renders directives in the markup protocol.
// Text that contains its own closing tag cannot be represented and is an error.
func EncodeMarkup(ds []Directive) (string, error) {
	b := new(strings.Builder)
	for i, d := range ds {
		if i > 0 {
			b.WriteString("\n")
		}
		var err error
		switch d := d.(type) {
		case Run:
			err = writeTag(b, string(KindRun), d.Command)
		case Message:
			err = writeTag(b, string(KindMessage), d.Text)
		case Reason:
			err = writeTag(b, string(KindReason), d.Text)
		case End:
			err = writeTag(b, string(KindEnd), d.Reason)
		case FileRead:
			err = writeFileElement(b, KindFileRead,
				fieldPath, d.Path,
			)
		case FileWriteInsert:
			err = writeFileElement(b, KindFileWriteInsert,
				fieldPath, d.Path,
				fieldStart, strconv.Itoa(d.Start),
				fieldContent, d.Content,
			)
		case FileWriteReplace:
			err = writeFileElement(b, KindFileWriteReplace,
				fieldPath, d.Path,
				fieldStart, strconv.Itoa(d.Start),
				fieldEnd, strconv.Itoa(d.End),
				fieldContent, d.Content,
			)
		default:
			err = fmt.Errorf("unknown directive: %T", d)
		}
		if err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func writeTag(b *strings.Builder, name, text string) error {
	if strings.Contains(text, "</"+name+">") {
		return fmt.Errorf("text of <%s> contains its closing tag", name)
	}
	b.WriteString("<" + name + ">")
	b.WriteString(text)
	b.WriteString("</" + name + ">")
	return nil
}

// writeFileElement expects the path as the first pair
func writeFileElement(b *strings.Builder, kind Kind, pairs ...string) error {
	if err := checkPath(kind, pairs[1]); err != nil {
		return err
	}
	b.WriteString("<" + string(kind) + ">\n")
	for i := 0; i < len(pairs); i += 2 {
		if err := writeTag(b, pairs[i], pairs[i+1]); err != nil {
			return err
		}
		b.WriteString("\n")
	}
	b.WriteString("</" + string(kind) + ">")
	return nil
}
