package protocol

import (
	"fmt"

	"github.com/danmuck/midy/internal/logging"
	"github.com/danmuck/midy/internal/protocol/bitfield"
	"github.com/danmuck/midy/internal/protocol/ci"
	"github.com/danmuck/midy/internal/protocol/midi1"
	"github.com/danmuck/midy/internal/protocol/ump"
)

// PacketReport is the decoded view of one UMP.
type PacketReport struct {
	MessageType ump.MessageType
	Group       ump.Group
	Words       int

	// HasStatus is set for message types carrying a status byte in bits
	// 23..16 of the header word.
	HasStatus bool
	Status    uint8

	// Classified is set when Status maps onto a MIDI 1.0 message shape.
	// DataBytes is only resolved for MIDI 1.0 carrying types.
	Classified bool
	Message    midi1.Message
	DataBytes  midi1.DataBytes
}

// InspectPacket decodes the header of p and, for MIDI 1.0 carrying message
// types, classifies and validates the embedded message.
func InspectPacket(p ump.Packet, policy Policy) (PacketReport, error) {
	mt, err := p.MessageType()
	if err != nil {
		logging.Errf("protocol.InspectPacket header: %v", err)
		return PacketReport{}, err
	}
	group, err := p.GroupWithin(policy.Limits)
	if err != nil {
		logging.Errf("protocol.InspectPacket message_type=%s group: %v", mt, err)
		return PacketReport{}, err
	}
	report := PacketReport{MessageType: mt, Group: group, Words: ump.PacketWords(mt)}
	logging.Debugf("protocol.InspectPacket message_type=%s group=%d words=%d", mt, group, report.Words)

	switch mt {
	case ump.SystemRealTimeAndCommon, ump.Midi1ChannelVoice:
		if err := inspectMIDI1Packet(p, mt, &report); err != nil {
			logging.Errf("protocol.InspectPacket message_type=%s status=%#04x: %v", mt, report.Status, err)
			return PacketReport{}, err
		}
	case ump.Midi2ChannelVoice:
		if err := inspectMIDI2Packet(p, &report); err != nil {
			logging.Errf("protocol.InspectPacket message_type=%s status=%#04x: %v", mt, report.Status, err)
			return PacketReport{}, err
		}
	}
	return report, nil
}

func inspectMIDI2Packet(p ump.Packet, report *PacketReport) error {
	status, err := p.Status()
	if err != nil {
		return err
	}
	report.HasStatus = true
	report.Status = status
	// Opcodes 0x8..0xE share MIDI 1.0 channel message shapes; the rest
	// (per-note and registered controllers) stay unclassified.
	if op := bitfield.HighNibble(status); op < uint8(midi1.NoteOff) || op > uint8(midi1.PitchBendChange) {
		return nil
	}
	msg, err := midi1.StatusByte(status).Message()
	if err != nil {
		return err
	}
	report.Classified = true
	report.Message = msg
	return nil
}

func inspectMIDI1Packet(p ump.Packet, mt ump.MessageType, report *PacketReport) error {
	b, err := p.MIDI1Bytes()
	if err != nil {
		return err
	}
	report.HasStatus = true
	report.Status = b[0]
	msg, err := midi1.StatusByte(b[0]).Message()
	if err != nil {
		return err
	}
	switch {
	case mt == ump.Midi1ChannelVoice && msg.Category != midi1.CategoryChannel:
		return fmt.Errorf("%w: %s carries %s", ErrStatusMismatch, mt, msg)
	case mt == ump.SystemRealTimeAndCommon && (msg.Category != midi1.CategorySystem || msg.System == midi1.Exclusive):
		// System exclusive travels in data packets, never here.
		return fmt.Errorf("%w: %s carries %s", ErrStatusMismatch, mt, msg)
	}
	count, err := msg.NumDataBytes()
	if err != nil {
		return err
	}
	n, _ := count.Count()
	for i := 0; i < n; i++ {
		if err := midi1.DataByte(b[1+i]).Validate(); err != nil {
			return fmt.Errorf("data byte %d: %w", i, err)
		}
	}
	report.Classified = true
	report.Message = msg
	report.DataBytes = count
	return nil
}

// NegotiationReport is the decoded view of a protocol negotiation payload.
type NegotiationReport struct {
	Type    ci.ProtocolType
	Version ci.ProtocolVersion
	// HasExtensions is set for MIDI 1.0 negotiations only.
	HasExtensions bool
	Extensions    ci.Midi1Extensions
}

// InspectNegotiation validates n under policy and decodes every field that
// applies to its protocol type.
func InspectNegotiation(n ci.NegotiationBytes, policy Policy) (NegotiationReport, error) {
	logging.Debugf("protocol.InspectNegotiation payload=% x", n.Bytes())
	if err := n.ValidateWith(policy.Negotiation); err != nil {
		logging.Errf("protocol.InspectNegotiation validate: %v", err)
		return NegotiationReport{}, err
	}
	t, err := n.ProtocolType()
	if err != nil {
		logging.Errf("protocol.InspectNegotiation type: %v", err)
		return NegotiationReport{}, err
	}
	v, err := n.ProtocolVersion()
	if err != nil {
		logging.Errf("protocol.InspectNegotiation version: %v", err)
		return NegotiationReport{}, err
	}
	report := NegotiationReport{Type: t, Version: v}
	if t == ci.Midi1 {
		ext, err := n.Midi1Extensions()
		if err != nil {
			return NegotiationReport{}, err
		}
		report.HasExtensions = true
		report.Extensions = ext
	}
	logging.Debugf("protocol.InspectNegotiation ok type=%s version=%s", t, v)
	return report, nil
}

// MIDI1Report is the decoded view of one framed MIDI 1.0 message.
type MIDI1Report struct {
	Message   midi1.Message
	DataBytes midi1.DataBytes
	Length    int
	// Summary is the gomidi rendering of the message, values included.
	Summary string
}

// InspectMIDI1 validates one complete MIDI 1.0 message.
func InspectMIDI1(b []byte) (MIDI1Report, error) {
	msg, err := midi1.Parse(b)
	if err != nil {
		logging.Errf("protocol.InspectMIDI1 bytes=% x: %v", b, err)
		return MIDI1Report{}, err
	}
	count, err := msg.NumDataBytes()
	if err != nil {
		return MIDI1Report{}, err
	}
	summary := midi1.Summary(b)
	logging.Debugf("protocol.InspectMIDI1 ok %s (%s)", msg, summary)
	return MIDI1Report{Message: msg, DataBytes: count, Length: len(b), Summary: summary}, nil
}
