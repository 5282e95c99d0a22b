package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/danmuck/midy/internal/protocol"
	"github.com/danmuck/midy/internal/protocol/ci"
	"github.com/danmuck/midy/internal/protocol/ump"
	"github.com/danmuck/midy/internal/protocol/vectors"
)

var errTruncatedStream = errors.New("umpctl: word stream ends inside a packet")

// splitPackets cuts a word stream into packets using each header's length.
func splitPackets(words []uint32) ([]ump.Packet, error) {
	out := make([]ump.Packet, 0, len(words))
	for i := 0; i < len(words); {
		head, err := ump.PacketFromWords(words[i : i+1])
		if err != nil {
			return nil, err
		}
		n, err := head.PacketWords()
		if err != nil {
			return nil, err
		}
		if i+n > len(words) {
			return nil, fmt.Errorf("%w: word %d wants %d words, %d left", errTruncatedStream, i, n, len(words)-i)
		}
		p, err := ump.PacketFromWords(words[i : i+n])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
		i += n
	}
	return out, nil
}

// row is one rendered decode result.
type row struct {
	Kind   vectors.Kind
	Input  string
	Detail string
	Err    error
}

func (r row) cells(index int) []string {
	result := "ok"
	if r.Err != nil {
		result = r.Err.Error()
	}
	return []string{strconv.Itoa(index), string(r.Kind), r.Input, r.Detail, result}
}

func decodeInput(kind vectors.Kind, hex string, policy protocol.Policy) ([]row, error) {
	switch kind {
	case vectors.KindPacket:
		words, err := vectors.ParseWords(hex)
		if err != nil {
			return nil, err
		}
		packets, err := splitPackets(words)
		if err != nil {
			return nil, err
		}
		rows := make([]row, 0, len(packets))
		for _, p := range packets {
			rows = append(rows, packetRow(p, policy))
		}
		return rows, nil
	case vectors.KindNegotiation:
		b, err := vectors.ParseBytes(hex)
		if err != nil {
			return nil, err
		}
		n, err := ci.Parse(b)
		if err != nil {
			return nil, err
		}
		return []row{negotiationRow(n, policy)}, nil
	case vectors.KindMIDI1:
		b, err := vectors.ParseBytes(hex)
		if err != nil {
			return nil, err
		}
		report, err := protocol.InspectMIDI1(b)
		r := row{Kind: kind, Input: fmt.Sprintf("% x", b), Err: err}
		if err == nil {
			r.Detail = fmt.Sprintf("%s data=%s [%s]", report.Message, report.DataBytes, report.Summary)
		}
		return []row{r}, nil
	default:
		return nil, fmt.Errorf("%w: %q", vectors.ErrUnknownKind, kind)
	}
}

func packetRow(p ump.Packet, policy protocol.Policy) row {
	n, _ := p.PacketWords()
	input := ""
	for i := 0; i < n; i++ {
		w, _ := p.Word(i)
		if i > 0 {
			input += " "
		}
		input += fmt.Sprintf("%08x", w)
	}
	report, err := protocol.InspectPacket(p, policy)
	r := row{Kind: vectors.KindPacket, Input: input, Err: err}
	if err != nil {
		return r
	}
	r.Detail = fmt.Sprintf("%s group=%d words=%d", report.MessageType, report.Group, report.Words)
	if report.Classified {
		r.Detail += " " + report.Message.String()
		if report.MessageType != ump.Midi2ChannelVoice {
			r.Detail += " data=" + report.DataBytes.String()
		}
	}
	return r
}

func negotiationRow(n ci.NegotiationBytes, policy protocol.Policy) row {
	b := n.Bytes()
	report, err := protocol.InspectNegotiation(n, policy)
	r := row{Kind: vectors.KindNegotiation, Input: fmt.Sprintf("% x", b[:]), Err: err}
	if err != nil {
		return r
	}
	r.Detail = fmt.Sprintf("type=%s version=%s", report.Type, report.Version)
	if report.HasExtensions {
		r.Detail += fmt.Sprintf(" jitter_reduction=%t large_packets=%t",
			report.Extensions.JitterReduction, report.Extensions.LargePackets)
	}
	return r
}
