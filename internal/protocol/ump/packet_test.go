package ump

import (
	"errors"
	"testing"
)

func header(mt, group uint8, rest uint32) uint32 {
	return uint32(mt)<<28 | uint32(group)<<24 | rest&0x00FFFFFF
}

func TestPacketWordsTableForAllMessageTypes(t *testing.T) {
	want := [16]int{1, 1, 1, 2, 2, 4, 1, 1, 2, 2, 2, 3, 3, 4, 4, 4}
	for code := uint8(0); code < 16; code++ {
		p := NewPacket([4]uint32{header(code, 0, 0)})
		n, err := p.PacketWords()
		if err != nil {
			t.Fatalf("packet words mt=%#x: %v", code, err)
		}
		if n != want[code] {
			t.Fatalf("mt=%#x: got %d words want %d", code, n, want[code])
		}
		if n < 1 || n > MaxPacketWords {
			t.Fatalf("mt=%#x: %d words outside 1..4", code, n)
		}
	}
}

func TestDataInclSystemExclusiveIsTwoWords(t *testing.T) {
	p := NewPacket([4]uint32{0x3000_0000})
	mt, err := p.MessageType()
	if err != nil {
		t.Fatalf("message type: %v", err)
	}
	if mt != DataInclSystemExclusive {
		t.Fatalf("expected DataInclSystemExclusive, got %s", mt)
	}
	if n, _ := p.PacketWords(); n != 2 {
		t.Fatalf("expected 2 words, got %d", n)
	}
}

func TestReservedMessageTypesDecode(t *testing.T) {
	for code := uint8(0x6); code <= 0xF; code++ {
		mt, err := MessageTypeFromBits(code)
		if err != nil {
			t.Fatalf("reserved mt=%#x rejected: %v", code, err)
		}
		if !mt.Reserved() {
			t.Fatalf("mt=%#x should be reserved", code)
		}
	}
	if Midi2ChannelVoice.Reserved() {
		t.Fatalf("midi2 channel voice is not reserved")
	}
}

func TestMessageTypeFromBitsOutOfRangeIsDeterministic(t *testing.T) {
	_, err := MessageTypeFromBits(16)
	if !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}
}

func TestPacketGroupFromHeader(t *testing.T) {
	for g := uint8(0); g <= MaxGroup; g++ {
		p := NewPacket([4]uint32{header(0x2, g, 0x903C64)})
		got, err := p.Group()
		if err != nil {
			t.Fatalf("group %d: %v", g, err)
		}
		if got.Uint8() != g {
			t.Fatalf("group: got %d want %d", got, g)
		}
	}
}

func TestGroupBoundaries(t *testing.T) {
	for v := uint8(0); v <= 15; v++ {
		if _, err := NewGroup(v); err != nil {
			t.Fatalf("group %d rejected: %v", v, err)
		}
	}
	if _, err := NewGroup(16); !errors.Is(err, ErrInvalidGroup) {
		t.Fatalf("expected group 16 rejected by default limits, got %v", err)
	}
	if _, err := LegacyLimits().Group(16); err != nil {
		t.Fatalf("expected group 16 accepted by legacy limits, got %v", err)
	}
	if _, err := LegacyLimits().Group(17); !errors.Is(err, ErrInvalidGroup) {
		t.Fatalf("expected group 17 rejected by legacy limits, got %v", err)
	}
	if _, err := NewGroup(17); !errors.Is(err, ErrInvalidGroup) {
		t.Fatalf("expected group 17 rejected, got %v", err)
	}
}

func TestGroupWithinCustomLimits(t *testing.T) {
	p := NewPacket([4]uint32{header(0x4, 9, 0)})
	if _, err := p.GroupWithin(Limits{MaxGroup: 7}); !errors.Is(err, ErrInvalidGroup) {
		t.Fatalf("expected ErrInvalidGroup, got %v", err)
	}
}

func TestPacketFromWordsSize(t *testing.T) {
	if _, err := PacketFromWords(nil); !errors.Is(err, ErrPacketSize) {
		t.Fatalf("expected ErrPacketSize for empty input, got %v", err)
	}
	if _, err := PacketFromWords(make([]uint32, 5)); !errors.Is(err, ErrPacketSize) {
		t.Fatalf("expected ErrPacketSize for 5 words, got %v", err)
	}
	p, err := PacketFromWords([]uint32{0x4090_3C00, 0xC800_0000})
	if err != nil {
		t.Fatalf("packet from words: %v", err)
	}
	w, err := p.Word(1)
	if err != nil || w != 0xC800_0000 {
		t.Fatalf("word 1: got %#x err=%v", w, err)
	}
}

func TestWordIsRangeCheckedAgainstPacketLength(t *testing.T) {
	p := NewPacket([4]uint32{0x2090_3C64, 0xDEAD, 0xBEEF, 0xF00D})
	if _, err := p.Word(0); err != nil {
		t.Fatalf("word 0: %v", err)
	}
	for _, i := range []int{-1, 1, 3, 4} {
		if _, err := p.Word(i); !errors.Is(err, ErrWordIndex) {
			t.Fatalf("word %d: expected ErrWordIndex, got %v", i, err)
		}
	}
}

func TestMIDI1BytesFromChannelVoicePacket(t *testing.T) {
	p := NewPacket([4]uint32{0x2390_3C64})
	b, err := p.MIDI1Bytes()
	if err != nil {
		t.Fatalf("midi1 bytes: %v", err)
	}
	if b != [3]byte{0x90, 0x3C, 0x64} {
		t.Fatalf("unexpected bytes % x", b)
	}
	g, _ := p.Group()
	if g != 3 {
		t.Fatalf("expected group 3, got %d", g)
	}
}

func TestMIDI1BytesRejectsOtherTypes(t *testing.T) {
	p := NewPacket([4]uint32{0x4090_3C00, 0xC800_0000})
	if _, err := p.MIDI1Bytes(); !errors.Is(err, ErrMessageTypeMismatch) {
		t.Fatalf("expected ErrMessageTypeMismatch, got %v", err)
	}
	status, err := p.Status()
	if err != nil || status != 0x90 {
		t.Fatalf("midi2 status: got %#x err=%v", status, err)
	}
	if _, err := NewPacket([4]uint32{0x0000_0000}).Status(); !errors.Is(err, ErrMessageTypeMismatch) {
		t.Fatalf("expected utility status mismatch, got %v", err)
	}
}

func TestMessageTypeString(t *testing.T) {
	if Midi1ChannelVoice.String() != "midi1_channel_voice" {
		t.Fatalf("unexpected name %q", Midi1ChannelVoice.String())
	}
	if MessageType(0x20).String() != "message_type(0x20)" {
		t.Fatalf("unexpected name %q", MessageType(0x20).String())
	}
	if PacketWords(MessageType(0x20)) != 0 {
		t.Fatalf("out of range message type must resolve to 0 words")
	}
}
