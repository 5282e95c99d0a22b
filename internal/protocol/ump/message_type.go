package ump

import "fmt"

// MessageType is the 4-bit MT field of a packet header. Reserved codes are
// valid tags: decoding them never fails.
type MessageType uint8

const (
	Utility                 MessageType = 0x0
	SystemRealTimeAndCommon MessageType = 0x1
	Midi1ChannelVoice       MessageType = 0x2
	DataInclSystemExclusive MessageType = 0x3
	Midi2ChannelVoice       MessageType = 0x4
	Data                    MessageType = 0x5
	Reserved6               MessageType = 0x6
	Reserved7               MessageType = 0x7
	Reserved8               MessageType = 0x8
	Reserved9               MessageType = 0x9
	ReservedA               MessageType = 0xA
	ReservedB               MessageType = 0xB
	ReservedC               MessageType = 0xC
	ReservedD               MessageType = 0xD
	ReservedE               MessageType = 0xE
	ReservedF               MessageType = 0xF
)

const messageTypeCount = 16

// packetWords is indexed by MessageType.
var packetWords = [messageTypeCount]uint8{
	Utility:                 1,
	SystemRealTimeAndCommon: 1,
	Midi1ChannelVoice:       1,
	DataInclSystemExclusive: 2,
	Midi2ChannelVoice:       2,
	Data:                    4,
	Reserved6:               1,
	Reserved7:               1,
	Reserved8:               2,
	Reserved9:               2,
	ReservedA:               2,
	ReservedB:               3,
	ReservedC:               3,
	ReservedD:               4,
	ReservedE:               4,
	ReservedF:               4,
}

var messageTypeNames = [messageTypeCount]string{
	Utility:                 "utility",
	SystemRealTimeAndCommon: "system_realtime_common",
	Midi1ChannelVoice:       "midi1_channel_voice",
	DataInclSystemExclusive: "data_sysex7",
	Midi2ChannelVoice:       "midi2_channel_voice",
	Data:                    "data_128",
	Reserved6:               "reserved_6",
	Reserved7:               "reserved_7",
	Reserved8:               "reserved_8",
	Reserved9:               "reserved_9",
	ReservedA:               "reserved_a",
	ReservedB:               "reserved_b",
	ReservedC:               "reserved_c",
	ReservedD:               "reserved_d",
	ReservedE:               "reserved_e",
	ReservedF:               "reserved_f",
}

// MessageTypeFromBits maps a raw MT value to its tag. Only values that do not
// fit in a nibble are rejected.
func MessageTypeFromBits(v uint8) (MessageType, error) {
	if v >= messageTypeCount {
		return 0, fmt.Errorf("%w: message type %#x", ErrMalformedHeader, v)
	}
	return MessageType(v), nil
}

// Reserved reports whether mt is one of the reserved codes 0x6..0xF.
func (mt MessageType) Reserved() bool {
	return mt >= Reserved6
}

func (mt MessageType) String() string {
	if int(mt) >= messageTypeCount {
		return fmt.Sprintf("message_type(%#x)", uint8(mt))
	}
	return messageTypeNames[mt]
}

// PacketWords returns the number of 32-bit words a packet of type mt
// occupies on the wire.
func PacketWords(mt MessageType) int {
	if int(mt) >= messageTypeCount {
		return 0
	}
	return int(packetWords[mt])
}
