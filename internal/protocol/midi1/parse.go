package midi1

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// Parse validates one complete, already framed message: a status byte
// followed by exactly its data bytes, or for system exclusive, data bytes
// terminated by End Of Exclusive. Running status is not supported.
func Parse(b []byte) (Message, error) {
	if len(b) == 0 {
		return Message{}, ErrEmptyMessage
	}
	msg, err := StatusByte(b[0]).Message()
	if err != nil {
		return Message{}, err
	}
	count, err := msg.NumDataBytes()
	if err != nil {
		return Message{}, err
	}
	body := b[1:]
	if count.UntilEOX() {
		if len(body) == 0 || StatusByte(body[len(body)-1]) != EndOfExclusiveStatus {
			return Message{}, ErrMissingEOX
		}
		body = body[:len(body)-1]
	} else if n, _ := count.Count(); len(body) != n {
		return Message{}, fmt.Errorf("%w: %s wants %d, got %d", ErrDataByteCount, msg, n, len(body))
	}
	for i, v := range body {
		if err := DataByte(v).Validate(); err != nil {
			return Message{}, fmt.Errorf("data byte %d: %w", i, err)
		}
	}
	return msg, nil
}

// FromGoMIDI classifies a message built with gitlab.com/gomidi/midi/v2.
func FromGoMIDI(m gomidi.Message) (Message, error) {
	return Parse([]byte(m))
}

// Summary renders b with gomidi's message printer, e.g.
// "NoteOn channel: 3 key: 60 velocity: 100".
func Summary(b []byte) string {
	return gomidi.Message(b).String()
}
