package readiness

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Kind identifies a readiness message.
type Kind uint8

const (
	// KindBootstrap is the host's phase-1 release. Its payload is an
	// encoded Bootstrap.
	KindBootstrap Kind = iota + 1
	// KindProceed is the host's phase-2 release, sent after the identity
	// mapping was written.
	KindProceed
	// KindAbort tells the child to exit without exec'ing anything.
	KindAbort
	// KindStage is a child report that it reached Stage.
	KindStage
	// KindFailed is a child report that it failed after reaching Stage.
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindBootstrap:
		return "bootstrap"
	case KindProceed:
		return "proceed"
	case KindAbort:
		return "abort"
	case KindStage:
		return "stage"
	case KindFailed:
		return "failed"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Message is one frame on the channel.
type Message struct {
	Kind    Kind
	Stage   string
	Reason  string
	Payload []byte
}

const (
	fieldKind    protowire.Number = 1
	fieldStage   protowire.Number = 2
	fieldReason  protowire.Number = 3
	fieldPayload protowire.Number = 4
)

var errMalformed = errors.New("malformed readiness message")

// MarshalWire encodes the message as a protobuf wire record.
func (m Message) MarshalWire() []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldKind, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.Kind))
	if m.Stage != "" {
		b = protowire.AppendTag(b, fieldStage, protowire.BytesType)
		b = protowire.AppendString(b, m.Stage)
	}
	if m.Reason != "" {
		b = protowire.AppendTag(b, fieldReason, protowire.BytesType)
		b = protowire.AppendString(b, m.Reason)
	}
	if len(m.Payload) > 0 {
		b = protowire.AppendTag(b, fieldPayload, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Payload)
	}
	return b
}

// UnmarshalWire decodes a record produced by MarshalWire. Unknown fields
// are skipped.
func (m *Message) UnmarshalWire(b []byte) error {
	*m = Message{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", errMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldKind && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return fmt.Errorf("%w: kind: %v", errMalformed, protowire.ParseError(n))
			}
			m.Kind = Kind(v)
			b = b[n:]
		case num == fieldStage && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return fmt.Errorf("%w: stage: %v", errMalformed, protowire.ParseError(n))
			}
			m.Stage = v
			b = b[n:]
		case num == fieldReason && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return fmt.Errorf("%w: reason: %v", errMalformed, protowire.ParseError(n))
			}
			m.Reason = v
			b = b[n:]
		case num == fieldPayload && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return fmt.Errorf("%w: payload: %v", errMalformed, protowire.ParseError(n))
			}
			m.Payload = append([]byte(nil), v...)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", errMalformed, num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if m.Kind == 0 {
		return fmt.Errorf("%w: missing kind", errMalformed)
	}
	return nil
}
