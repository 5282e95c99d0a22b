package ci

import (
	"errors"
	"strings"
	"testing"
)

func TestMidi1NegotiationWithBothExtensions(t *testing.T) {
	n := FromArray([PayloadLen]byte{0x01, 0x00, 0x03, 0x00, 0x00})
	pt, err := n.ProtocolType()
	if err != nil || pt != Midi1 {
		t.Fatalf("protocol type: got %s err=%v", pt, err)
	}
	pv, err := n.ProtocolVersion()
	if err != nil || pv != VersionMidi1 {
		t.Fatalf("protocol version: got %s err=%v", pv, err)
	}
	ext, err := n.Midi1Extensions()
	if err != nil {
		t.Fatalf("extensions: %v", err)
	}
	if !ext.LargePackets || !ext.JitterReduction {
		t.Fatalf("unexpected extensions: %+v", ext)
	}
	if err := n.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestMidi2NegotiationReservedByte4(t *testing.T) {
	n := FromArray([PayloadLen]byte{0x02, 0x00, 0x00, 0x00, 0x01})
	err := n.Validate()
	if !errors.Is(err, ErrReservedByteViolation) {
		t.Fatalf("expected ErrReservedByteViolation, got %v", err)
	}
	var rb ReservedByteError
	if !errors.As(err, &rb) {
		t.Fatalf("expected ReservedByteError, got %T", err)
	}
	if rb.Index != 4 || rb.Value != 0x01 {
		t.Fatalf("unexpected reserved byte error: %+v", rb)
	}
	if _, err := n.Midi1Extensions(); !errors.Is(err, ErrExtensionsNotApplicable) {
		t.Fatalf("expected ErrExtensionsNotApplicable, got %v", err)
	}
	pv, err := n.ProtocolVersion()
	if err != nil || pv != VersionMidi2v1 {
		t.Fatalf("protocol version: got %s err=%v", pv, err)
	}
}

func TestReservedByte3ReportedBeforeByte4(t *testing.T) {
	n := FromArray([PayloadLen]byte{0x01, 0x00, 0x00, 0x7F, 0x01})
	var rb ReservedByteError
	if err := n.Validate(); !errors.As(err, &rb) || rb.Index != 3 {
		t.Fatalf("expected reserved byte 3, got %v", err)
	}
}

func TestUnrecognizedProtocolType(t *testing.T) {
	n := FromArray([PayloadLen]byte{0x03, 0x00, 0x00, 0x00, 0x00})
	if _, err := n.ProtocolType(); !errors.Is(err, ErrUnrecognizedProtocolType) {
		t.Fatalf("expected ErrUnrecognizedProtocolType, got %v", err)
	}
	if _, err := n.ProtocolVersion(); !errors.Is(err, ErrUnrecognizedProtocolType) {
		t.Fatalf("expected type error from version, got %v", err)
	}
	if _, err := n.Midi1Extensions(); !errors.Is(err, ErrUnrecognizedProtocolType) {
		t.Fatalf("expected type error from extensions, got %v", err)
	}
}

func TestUnrecognizedProtocolVersion(t *testing.T) {
	n := FromArray([PayloadLen]byte{0x02, 0x01, 0x00, 0x00, 0x00})
	if _, err := n.ProtocolVersion(); !errors.Is(err, ErrUnrecognizedProtocolVersion) {
		t.Fatalf("expected ErrUnrecognizedProtocolVersion, got %v", err)
	}
}

func TestExtensionHighBitsIgnoredUnlessStrict(t *testing.T) {
	n := FromArray([PayloadLen]byte{0x01, 0x00, 0xFD, 0x00, 0x00})
	ext, err := n.Midi1Extensions()
	if err != nil {
		t.Fatalf("extensions: %v", err)
	}
	if !ext.JitterReduction || ext.LargePackets {
		t.Fatalf("unexpected extensions: %+v", ext)
	}
	if err := n.Validate(); err != nil {
		t.Fatalf("lenient validate: %v", err)
	}
	if err := n.ValidateWith(Options{StrictExtensions: true}); !errors.Is(err, ErrReservedExtensionBits) {
		t.Fatalf("expected ErrReservedExtensionBits, got %v", err)
	}
	clean := FromArray([PayloadLen]byte{0x01, 0x00, 0x03, 0x00, 0x00})
	if err := clean.ValidateWith(Options{StrictExtensions: true}); err != nil {
		t.Fatalf("strict validate of clean payload: %v", err)
	}
}

func TestParseRequiresFiveBytes(t *testing.T) {
	for _, in := range [][]byte{nil, {0x01}, {0x01, 0x00, 0x00, 0x00, 0x00, 0x00}} {
		if _, err := Parse(in); !errors.Is(err, ErrPayloadLength) {
			t.Fatalf("len %d: expected ErrPayloadLength, got %v", len(in), err)
		}
	}
	n, err := Parse([]byte{0x02, 0x00, 0x00, 0x00, 0x00})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if pt, _ := n.ProtocolType(); pt != Midi2 {
		t.Fatalf("expected midi2, got %s", pt)
	}
}

func TestNewEncodesPayload(t *testing.T) {
	n := New(Midi1, Midi1Extensions{LargePackets: true})
	if n.Bytes() != [PayloadLen]byte{0x01, 0x00, 0x02, 0x00, 0x00} {
		t.Fatalf("unexpected payload % x", n.Bytes())
	}
	m2 := New(Midi2, Midi1Extensions{LargePackets: true, JitterReduction: true})
	if m2.Bytes() != [PayloadLen]byte{0x02, 0x00, 0x00, 0x00, 0x00} {
		t.Fatalf("midi2 payload must not carry extensions: % x", m2.Bytes())
	}
}

func TestReservedByteErrorRendersTwoHexDigits(t *testing.T) {
	err := FromArray([5]byte{0x01, 0x00, 0x00, 0x05, 0x00}).Validate()
	if err == nil || !strings.Contains(err.Error(), "reserved byte 3 is 0x05") {
		t.Fatalf("unexpected error text: %v", err)
	}
}
