package midi1

import "fmt"

type Category uint8

const (
	CategoryChannel Category = iota + 1
	CategorySystem
)

func (c Category) String() string {
	switch c {
	case CategoryChannel:
		return "channel"
	case CategorySystem:
		return "system"
	default:
		return "unknown"
	}
}

// ChannelMessage is the high nibble of a channel status byte.
type ChannelMessage uint8

const (
	NoteOff                           ChannelMessage = 0x8
	NoteOn                            ChannelMessage = 0x9
	PolyphonicKeyPressureOrAftertouch ChannelMessage = 0xA
	ControlChangeOrChannelMode        ChannelMessage = 0xB
	ProgramChange                     ChannelMessage = 0xC
	ChannelPressureOrAftertouch       ChannelMessage = 0xD
	PitchBendChange                   ChannelMessage = 0xE
)

func (m ChannelMessage) String() string {
	switch m {
	case NoteOff:
		return "note_off"
	case NoteOn:
		return "note_on"
	case PolyphonicKeyPressureOrAftertouch:
		return "poly_key_pressure"
	case ControlChangeOrChannelMode:
		return "control_change"
	case ProgramChange:
		return "program_change"
	case ChannelPressureOrAftertouch:
		return "channel_pressure"
	case PitchBendChange:
		return "pitch_bend"
	default:
		return fmt.Sprintf("channel_message(%#x)", uint8(m))
	}
}

// NumDataBytes is the fixed body length of m.
func (m ChannelMessage) NumDataBytes() (DataBytes, error) {
	switch m {
	case NoteOff, NoteOn, PolyphonicKeyPressureOrAftertouch, ControlChangeOrChannelMode, PitchBendChange:
		return Fixed(2), nil
	case ProgramChange, ChannelPressureOrAftertouch:
		return Fixed(1), nil
	default:
		return DataBytes{}, fmt.Errorf("%w: channel message %#x", ErrUnresolvedDataByteCount, uint8(m))
	}
}

// ChannelMessageType separates voice messages from the channel mode messages
// that share the control change status.
type ChannelMessageType uint8

const (
	Voice ChannelMessageType = iota + 1
	Mode
)

func (t ChannelMessageType) String() string {
	if t == Mode {
		return "mode"
	}
	return "voice"
}

// firstModeController is the lowest controller number reserved for channel
// mode messages (All Sound Off .. Poly Mode On).
const firstModeController DataByte = 120

type SystemMessage uint8

const (
	Common SystemMessage = iota + 1
	RealTime
	Exclusive
)

func (m SystemMessage) String() string {
	switch m {
	case Common:
		return "common"
	case RealTime:
		return "realtime"
	case Exclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

type SystemCommonMessage uint8

const (
	MTCQuarterFrame     SystemCommonMessage = 0xF1
	SongPositionPointer SystemCommonMessage = 0xF2
	SongSelect          SystemCommonMessage = 0xF3
	UndefinedCommonF4   SystemCommonMessage = 0xF4
	UndefinedCommonF5   SystemCommonMessage = 0xF5
	TuneRequest         SystemCommonMessage = 0xF6
	EndOfExclusive      SystemCommonMessage = 0xF7
)

func (m SystemCommonMessage) String() string {
	switch m {
	case MTCQuarterFrame:
		return "mtc_quarter_frame"
	case SongPositionPointer:
		return "song_position_pointer"
	case SongSelect:
		return "song_select"
	case TuneRequest:
		return "tune_request"
	case EndOfExclusive:
		return "end_of_exclusive"
	default:
		return fmt.Sprintf("undefined_common(%#04x)", uint8(m))
	}
}

// NumDataBytes resolves the body length of a system common message. The two
// undefined codes have no length.
func (m SystemCommonMessage) NumDataBytes() (DataBytes, error) {
	switch m {
	case MTCQuarterFrame, SongSelect:
		return Fixed(1), nil
	case SongPositionPointer:
		return Fixed(2), nil
	case TuneRequest, EndOfExclusive:
		return Fixed(0), nil
	default:
		return DataBytes{}, fmt.Errorf("%w: system common %#04x", ErrUnresolvedDataByteCount, uint8(m))
	}
}

type RealTimeMessage uint8

const (
	TimingClock         RealTimeMessage = 0xF8
	UndefinedRealTimeF9 RealTimeMessage = 0xF9
	Start               RealTimeMessage = 0xFA
	Continue            RealTimeMessage = 0xFB
	Stop                RealTimeMessage = 0xFC
	UndefinedRealTimeFD RealTimeMessage = 0xFD
	ActiveSensing       RealTimeMessage = 0xFE
	SystemReset         RealTimeMessage = 0xFF
)

func (m RealTimeMessage) String() string {
	switch m {
	case TimingClock:
		return "timing_clock"
	case Start:
		return "start"
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	case ActiveSensing:
		return "active_sensing"
	case SystemReset:
		return "system_reset"
	default:
		return fmt.Sprintf("undefined_realtime(%#04x)", uint8(m))
	}
}

// Message is a classified status byte: a channel message tag or a system
// message tag, never both.
type Message struct {
	Category Category
	Channel  ChannelMessage
	System   SystemMessage
	Status   StatusByte
}

// NumDataBytes resolves how many data bytes follow the status byte.
func (m Message) NumDataBytes() (DataBytes, error) {
	switch m.Category {
	case CategoryChannel:
		return m.Channel.NumDataBytes()
	case CategorySystem:
		switch m.System {
		case RealTime:
			return Fixed(0), nil
		case Exclusive:
			return UntilEOX(), nil
		case Common:
			common, ok := m.Status.SystemCommon()
			if !ok {
				return DataBytes{}, fmt.Errorf("%w: status %#04x", ErrUnresolvedDataByteCount, uint8(m.Status))
			}
			return common.NumDataBytes()
		}
	}
	return DataBytes{}, fmt.Errorf("%w: status %#04x", ErrUnresolvedDataByteCount, uint8(m.Status))
}

// ChannelMessageType reports whether a channel message is a voice or a mode
// message. first is the first data byte; only control change inspects it.
func (m Message) ChannelMessageType(first DataByte) (ChannelMessageType, error) {
	if m.Category != CategoryChannel {
		return 0, fmt.Errorf("%w: status %#04x", ErrNotChannelMessage, uint8(m.Status))
	}
	if m.Channel == ControlChangeOrChannelMode && first >= firstModeController {
		if err := first.Validate(); err != nil {
			return 0, err
		}
		return Mode, nil
	}
	return Voice, nil
}

func (m Message) String() string {
	switch m.Category {
	case CategoryChannel:
		return fmt.Sprintf("%s ch=%d", m.Channel, m.Status.Channel())
	case CategorySystem:
		if rt, ok := m.Status.RealTime(); ok {
			return rt.String()
		}
		if common, ok := m.Status.SystemCommon(); ok {
			return common.String()
		}
		return "system_exclusive"
	default:
		return fmt.Sprintf("status(%#04x)", uint8(m.Status))
	}
}
