// Package ci decodes the MIDI-CI protocol negotiation payload.
//
// The payload is a pure function of its five bytes; the negotiation exchange
// between devices is owned by the caller.
package ci

import (
	"fmt"

	"github.com/danmuck/midy/internal/protocol/bitfield"
)

const PayloadLen = 5

const (
	offType       = 0
	offVersion    = 1
	offExtensions = 2
	offReserved3  = 3
	offReserved4  = 4

	// versionByte is the only recognized protocol version selector.
	versionByte byte = 0x00

	bitJitterReduction = 0
	bitLargePackets    = 1
	extensionsMask     = 1<<bitJitterReduction | 1<<bitLargePackets
)

type ProtocolType uint8

const (
	Midi1 ProtocolType = 0x01
	Midi2 ProtocolType = 0x02
)

func (t ProtocolType) String() string {
	switch t {
	case Midi1:
		return "midi1"
	case Midi2:
		return "midi2"
	default:
		return fmt.Sprintf("protocol_type(%#04x)", uint8(t))
	}
}

// ProtocolVersion is the resolved protocol type and version selector.
type ProtocolVersion uint8

const (
	VersionMidi1 ProtocolVersion = iota + 1
	VersionMidi2v1
)

func (v ProtocolVersion) String() string {
	switch v {
	case VersionMidi1:
		return "midi1"
	case VersionMidi2v1:
		return "midi2v1"
	default:
		return "unknown"
	}
}

type Midi1Extensions struct {
	JitterReduction bool
	LargePackets    bool
}

func (e Midi1Extensions) flags() byte {
	var b byte
	if e.JitterReduction {
		b |= 1 << bitJitterReduction
	}
	if e.LargePackets {
		b |= 1 << bitLargePackets
	}
	return b
}

// Options selects validation strictness.
type Options struct {
	// StrictExtensions rejects nonzero extension bits above bit 1.
	StrictExtensions bool
}

// NegotiationBytes is one protocol negotiation payload.
type NegotiationBytes struct {
	data [PayloadLen]byte
}

func FromArray(b [PayloadLen]byte) NegotiationBytes {
	return NegotiationBytes{data: b}
}

// Parse copies exactly PayloadLen bytes.
func Parse(b []byte) (NegotiationBytes, error) {
	if len(b) != PayloadLen {
		return NegotiationBytes{}, fmt.Errorf("%w: %d bytes", ErrPayloadLength, len(b))
	}
	var n NegotiationBytes
	copy(n.data[:], b)
	return n, nil
}

// New encodes a version 0x00 payload. Extensions are only encoded for Midi1.
func New(t ProtocolType, ext Midi1Extensions) NegotiationBytes {
	var n NegotiationBytes
	n.data[offType] = byte(t)
	n.data[offVersion] = versionByte
	if t == Midi1 {
		n.data[offExtensions] = ext.flags()
	}
	return n
}

func (n NegotiationBytes) Bytes() [PayloadLen]byte {
	return n.data
}

func (n NegotiationBytes) ProtocolType() (ProtocolType, error) {
	switch t := ProtocolType(n.data[offType]); t {
	case Midi1, Midi2:
		return t, nil
	default:
		return 0, fmt.Errorf("%w: %#04x", ErrUnrecognizedProtocolType, uint8(t))
	}
}

func (n NegotiationBytes) ProtocolVersion() (ProtocolVersion, error) {
	if v := n.data[offVersion]; v != versionByte {
		return 0, fmt.Errorf("%w: %#04x", ErrUnrecognizedProtocolVersion, v)
	}
	t, err := n.ProtocolType()
	if err != nil {
		return 0, err
	}
	switch t {
	case Midi1:
		return VersionMidi1, nil
	default:
		return VersionMidi2v1, nil
	}
}

// Validate checks the reserved bytes. Byte 3 is checked before byte 4.
func (n NegotiationBytes) Validate() error {
	return n.ValidateWith(Options{})
}

func (n NegotiationBytes) ValidateWith(opts Options) error {
	for _, i := range [...]int{offReserved3, offReserved4} {
		if v := n.data[i]; v != 0 {
			return ReservedByteError{Index: i, Value: v}
		}
	}
	if opts.StrictExtensions {
		if extra := n.data[offExtensions] &^ extensionsMask; extra != 0 {
			return fmt.Errorf("%w: %#04x", ErrReservedExtensionBits, extra)
		}
	}
	return nil
}

// Midi1Extensions decodes the extension flags. Bits above bit 1 are ignored.
func (n NegotiationBytes) Midi1Extensions() (Midi1Extensions, error) {
	t, err := n.ProtocolType()
	if err != nil {
		return Midi1Extensions{}, err
	}
	if t != Midi1 {
		return Midi1Extensions{}, fmt.Errorf("%w: %s", ErrExtensionsNotApplicable, t)
	}
	ext := n.data[offExtensions]
	return Midi1Extensions{
		JitterReduction: bitfield.Bit(ext, bitJitterReduction),
		LargePackets:    bitfield.Bit(ext, bitLargePackets),
	}, nil
}
