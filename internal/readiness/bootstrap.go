package readiness

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Bootstrap is the part of a container spec the isolated process needs. It
// travels as the payload of the phase-1 message.
type Bootstrap struct {
	Path           string
	Args           []string
	Env            []string
	Capabilities   []string
	SwitchIdentity bool
	LogLevel       string
	LogFormat      string
	// PrivateMounts asks for recursive private propagation on "/".
	PrivateMounts bool
	// RemountProc asks for a fresh /proc for the new pid namespace.
	RemountProc bool
}

const (
	fieldPath           protowire.Number = 1
	fieldArgs           protowire.Number = 2
	fieldEnv            protowire.Number = 3
	fieldCapabilities   protowire.Number = 4
	fieldSwitchIdentity protowire.Number = 5
	fieldLogLevel       protowire.Number = 6
	fieldLogFormat      protowire.Number = 7
	fieldPrivateMounts  protowire.Number = 8
	fieldRemountProc    protowire.Number = 9
)

func appendString(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// appendFlag writes v only when set; absent means false.
func appendFlag(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(true))
}

// MarshalWire encodes the bootstrap as a protobuf wire record. Repeated
// fields keep their order.
func (bs Bootstrap) MarshalWire() []byte {
	var b []byte
	b = appendString(b, fieldPath, bs.Path)
	for _, a := range bs.Args {
		b = appendString(b, fieldArgs, a)
	}
	for _, e := range bs.Env {
		b = appendString(b, fieldEnv, e)
	}
	for _, c := range bs.Capabilities {
		b = appendString(b, fieldCapabilities, c)
	}
	b = appendFlag(b, fieldSwitchIdentity, bs.SwitchIdentity)
	if bs.LogLevel != "" {
		b = appendString(b, fieldLogLevel, bs.LogLevel)
	}
	if bs.LogFormat != "" {
		b = appendString(b, fieldLogFormat, bs.LogFormat)
	}
	b = appendFlag(b, fieldPrivateMounts, bs.PrivateMounts)
	b = appendFlag(b, fieldRemountProc, bs.RemountProc)
	return b
}

// UnmarshalWire decodes a record produced by MarshalWire.
func (bs *Bootstrap) UnmarshalWire(b []byte) error {
	*bs = Bootstrap{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: bootstrap: %v", errMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		if typ == protowire.VarintType {
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return fmt.Errorf("%w: bootstrap: %v", errMalformed, protowire.ParseError(n))
			}
			b = b[n:]

			switch num {
			case fieldSwitchIdentity:
				bs.SwitchIdentity = protowire.DecodeBool(v)
			case fieldPrivateMounts:
				bs.PrivateMounts = protowire.DecodeBool(v)
			case fieldRemountProc:
				bs.RemountProc = protowire.DecodeBool(v)
			}
			continue
		}

		if typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("%w: bootstrap: %v", errMalformed, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}

		v, n := protowire.ConsumeString(b)
		if n < 0 {
			return fmt.Errorf("%w: bootstrap field %d: %v", errMalformed, num, protowire.ParseError(n))
		}
		b = b[n:]

		switch num {
		case fieldPath:
			bs.Path = v
		case fieldArgs:
			bs.Args = append(bs.Args, v)
		case fieldEnv:
			bs.Env = append(bs.Env, v)
		case fieldCapabilities:
			bs.Capabilities = append(bs.Capabilities, v)
		case fieldLogLevel:
			bs.LogLevel = v
		case fieldLogFormat:
			bs.LogFormat = v
		}
	}

	if bs.Path == "" {
		return fmt.Errorf("%w: bootstrap without command path", errMalformed)
	}
	return nil
}
