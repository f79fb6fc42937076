package directives

import (
	"fmt"
	"strings"
)

type Protocol string

const (
	ProtocolJSON   Protocol = "json"
	ProtocolMarkup Protocol = "markup"
)

func ParseProtocol(s string) (Protocol, error) {
	switch p := Protocol(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return ProtocolJSON, nil
	case ProtocolJSON, ProtocolMarkup:
		return p, nil
	}
	return "", fmt.Errorf("unknown protocol: %q", s)
}

// ProtocolError reports a response that does not conform to the protocol.
// Offset is a byte offset into the fence-stripped text.
type ProtocolError struct {
	Protocol Protocol
	Offset   int
	Reason   string
}

func (p *ProtocolError) Error() string {
	return fmt.Sprintf("invalid %s directives at offset %d: %s", p.Protocol, p.Offset, p.Reason)
}

func protocolError(protocol Protocol, offset int, format string, args ...any) *ProtocolError {
	return &ProtocolError{
		Protocol: protocol,
		Offset:   offset,
		Reason:   fmt.Sprintf(format, args...),
	}
}
