package ump

import "errors"

var (
	ErrMalformedHeader     = errors.New("ump: malformed header")
	ErrInvalidGroup        = errors.New("ump: invalid group")
	ErrPacketSize          = errors.New("ump: invalid packet size")
	ErrWordIndex           = errors.New("ump: word index out of range")
	ErrMessageTypeMismatch = errors.New("ump: message type mismatch")
)
