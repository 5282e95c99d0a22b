package ci

import (
	"errors"
	"fmt"
)

var (
	ErrPayloadLength               = errors.New("ci: invalid negotiation payload length")
	ErrUnrecognizedProtocolType    = errors.New("ci: unrecognized protocol type")
	ErrUnrecognizedProtocolVersion = errors.New("ci: unrecognized protocol version")
	ErrReservedByteViolation       = errors.New("ci: reserved byte violation")
	ErrExtensionsNotApplicable     = errors.New("ci: midi 1 extensions requested for non midi 1 negotiation")
	ErrReservedExtensionBits       = errors.New("ci: reserved extension bits set")
)

// ReservedByteError identifies which reserved byte of a negotiation payload
// is nonzero.
type ReservedByteError struct {
	Index int
	Value byte
}

func (e ReservedByteError) Error() string {
	return fmt.Sprintf("ci: reserved byte %d is %#04x, want 0x00", e.Index, e.Value)
}

func (e ReservedByteError) Is(target error) bool {
	return target == ErrReservedByteViolation
}
