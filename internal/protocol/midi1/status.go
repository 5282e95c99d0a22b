// Package midi1 classifies MIDI 1.0 status and data bytes.
package midi1

import (
	"fmt"

	"github.com/danmuck/midy/internal/protocol/bitfield"
)

const (
	statusBit = 7

	SystemExclusiveStatus StatusByte = 0xF0
	EndOfExclusiveStatus  StatusByte = 0xF7
)

// StatusByte is the leading byte of a message. Bit 7 is set.
type StatusByte uint8

func (s StatusByte) Validate() error {
	if !bitfield.Bit(uint8(s), statusBit) {
		return fmt.Errorf("%w: %#04x has msb clear", ErrInvalidStatusByte, uint8(s))
	}
	return nil
}

// Channel is the low nibble, meaningful for channel messages only.
func (s StatusByte) Channel() uint8 {
	return bitfield.LowNibble(uint8(s))
}

// Message validates s and classifies it.
func (s StatusByte) Message() (Message, error) {
	if err := s.Validate(); err != nil {
		return Message{}, err
	}
	hi := bitfield.HighNibble(uint8(s))
	switch {
	case hi >= uint8(NoteOff) && hi <= uint8(PitchBendChange):
		return Message{Category: CategoryChannel, Channel: ChannelMessage(hi), Status: s}, nil
	default:
		return Message{Category: CategorySystem, System: systemMessage(s), Status: s}, nil
	}
}

func systemMessage(s StatusByte) SystemMessage {
	switch {
	case s == SystemExclusiveStatus:
		return Exclusive
	case s >= StatusByte(TimingClock):
		return RealTime
	default:
		return Common
	}
}

// SystemCommon returns the system common tag of s, or false when s is not
// in 0xF1..0xF7.
func (s StatusByte) SystemCommon() (SystemCommonMessage, bool) {
	if s < StatusByte(MTCQuarterFrame) || s > EndOfExclusiveStatus {
		return 0, false
	}
	return SystemCommonMessage(s), true
}

// RealTime returns the real-time tag of s, or false when s is not in
// 0xF8..0xFF.
func (s StatusByte) RealTime() (RealTimeMessage, bool) {
	if s < StatusByte(TimingClock) {
		return 0, false
	}
	return RealTimeMessage(s), true
}

// DataByte is a message body byte. Bit 7 is clear.
type DataByte uint8

func (d DataByte) Validate() error {
	if bitfield.Bit(uint8(d), statusBit) {
		return fmt.Errorf("%w: %#04x has msb set", ErrInvalidDataByte, uint8(d))
	}
	return nil
}
