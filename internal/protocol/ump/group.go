package ump

import "fmt"

const (
	// MaxGroup is the largest group a 4-bit header field can encode.
	MaxGroup uint8 = 15
	// legacyMaxGroup is the historical inclusive bound of 16.
	legacyMaxGroup uint8 = 16
)

// Group addresses one of the logical MIDI ports multiplexed over a transport.
type Group uint8

// Limits bounds header field domains.
type Limits struct {
	MaxGroup uint8
}

func DefaultLimits() Limits {
	return Limits{MaxGroup: MaxGroup}
}

// LegacyLimits admits group 16, which no packet header can carry but older
// callers constructed directly.
func LegacyLimits() Limits {
	return Limits{MaxGroup: legacyMaxGroup}
}

// Group validates v against the configured bound.
func (l Limits) Group(v uint8) (Group, error) {
	if v > l.MaxGroup {
		return 0, fmt.Errorf("%w: %d (max %d)", ErrInvalidGroup, v, l.MaxGroup)
	}
	return Group(v), nil
}

// NewGroup validates v against DefaultLimits.
func NewGroup(v uint8) (Group, error) {
	return DefaultLimits().Group(v)
}

func (g Group) Uint8() uint8 {
	return uint8(g)
}
