package ump

import (
	"fmt"

	"github.com/danmuck/midy/internal/protocol/bitfield"
)

// MaxPacketWords is the size of the largest packet (128 bits).
const MaxPacketWords = 4

// Packet is one UMP held as native-endian words. Shorter packets use a prefix
// of the buffer; trailing words are ignored.
type Packet struct {
	data [MaxPacketWords]uint32
}

func NewPacket(words [MaxPacketWords]uint32) Packet {
	return Packet{data: words}
}

// PacketFromWords copies 1..4 words into a packet.
func PacketFromWords(words []uint32) (Packet, error) {
	if len(words) == 0 || len(words) > MaxPacketWords {
		return Packet{}, fmt.Errorf("%w: %d words", ErrPacketSize, len(words))
	}
	var p Packet
	copy(p.data[:], words)
	return p, nil
}

func (p Packet) header() uint32 {
	return p.data[0]
}

// MessageType decodes bits 31..28 of the header word.
func (p Packet) MessageType() (MessageType, error) {
	return MessageTypeFromBits(uint8(bitfield.Bits(p.header(), 31, 28)))
}

// Group decodes bits 27..24 of the header word under DefaultLimits.
func (p Packet) Group() (Group, error) {
	return p.GroupWithin(DefaultLimits())
}

func (p Packet) GroupWithin(l Limits) (Group, error) {
	return l.Group(bitfield.Nibble(p.header(), 1))
}

// PacketWords resolves the on-wire length of the packet from its message type.
func (p Packet) PacketWords() (int, error) {
	mt, err := p.MessageType()
	if err != nil {
		return 0, err
	}
	return PacketWords(mt), nil
}

// Word returns word i of the packet. Indexes past the packet length are
// rejected even though the buffer holds four words.
func (p Packet) Word(i int) (uint32, error) {
	n, err := p.PacketWords()
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d of %d", ErrWordIndex, i, n)
	}
	return p.data[i], nil
}

// Status returns bits 23..16 of the header word for message types that carry
// a status byte there: the MIDI 1.0 status for types 0x1 and 0x2, the
// opcode and channel for type 0x4.
func (p Packet) Status() (uint8, error) {
	mt, err := p.MessageType()
	if err != nil {
		return 0, err
	}
	switch mt {
	case SystemRealTimeAndCommon, Midi1ChannelVoice, Midi2ChannelVoice:
		return bitfield.Byte(p.header(), 1), nil
	default:
		return 0, fmt.Errorf("%w: %s has no status byte", ErrMessageTypeMismatch, mt)
	}
}

// MIDI1Bytes returns the MIDI 1.0 status and two data bytes packed in the
// header word of a 32-bit system or MIDI 1.0 channel voice packet. Unused data
// bytes are returned as sent (normally zero).
func (p Packet) MIDI1Bytes() ([3]byte, error) {
	mt, err := p.MessageType()
	if err != nil {
		return [3]byte{}, err
	}
	if mt != SystemRealTimeAndCommon && mt != Midi1ChannelVoice {
		return [3]byte{}, fmt.Errorf("%w: %s does not carry midi 1.0 bytes", ErrMessageTypeMismatch, mt)
	}
	w := p.header()
	return [3]byte{bitfield.Byte(w, 1), bitfield.Byte(w, 2), bitfield.Byte(w, 3)}, nil
}
