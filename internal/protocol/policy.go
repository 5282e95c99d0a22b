package protocol

import (
	"github.com/danmuck/midy/internal/protocol/ci"
	"github.com/danmuck/midy/internal/protocol/ump"
)

// Policy carries the strictness choices applied during inspection. The zero
// value is not usable: its Limits admit group 0 only. Start from
// DefaultPolicy and adjust fields.
type Policy struct {
	Limits      ump.Limits
	Negotiation ci.Options
}

// DefaultPolicy admits groups 0..15 and ignores unassigned extension bits.
func DefaultPolicy() Policy {
	return Policy{Limits: ump.DefaultLimits()}
}
