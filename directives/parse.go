package directives

import (
	"fmt"
	"strings"
)

// StripFences removes one surrounding markdown code fence and the whitespace around it
func StripFences(text string) string {
	text = strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(text, "```"); ok {
		// language tag
		i := 0
		for i < len(rest) && isTagByte(rest[i]) {
			i++
		}
		text = rest[i:]
	}
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func isTagByte(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' ||
		b == '-' || b == '_' || b == '+' || b == '.'
}

// Parse decodes a model response into directives. Any violation fails the whole response with a *ProtocolError.
func Parse(protocol Protocol, text string) ([]Directive, error) {
	text = StripFences(text)
	switch protocol {
	case ProtocolJSON, "":
		if text == "" {
			return []Directive{}, nil
		}
		return parseJSON(text)
	case ProtocolMarkup:
		return parseMarkup(text)
	}
	return nil, fmt.Errorf("unknown protocol: %q", protocol)
}

// Encode renders directives in the given protocol
func Encode(protocol Protocol, ds []Directive) (string, error) {
	switch protocol {
	case ProtocolJSON, "":
		bs, err := EncodeJSON(ds)
		if err != nil {
			return "", err
		}
		return string(bs), nil
	case ProtocolMarkup:
		return EncodeMarkup(ds)
	}
	return "", fmt.Errorf("unknown protocol: %q", protocol)
}
