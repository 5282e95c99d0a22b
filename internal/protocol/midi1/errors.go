package midi1

import "errors"

var (
	ErrInvalidStatusByte       = errors.New("midi1: invalid status byte")
	ErrInvalidDataByte         = errors.New("midi1: invalid data byte")
	ErrUnresolvedDataByteCount = errors.New("midi1: unresolved data byte count")
	ErrNotChannelMessage       = errors.New("midi1: not a channel message")
	ErrEmptyMessage            = errors.New("midi1: empty message")
	ErrDataByteCount           = errors.New("midi1: data byte count mismatch")
	ErrMissingEOX              = errors.New("midi1: system exclusive without end of exclusive")
)
