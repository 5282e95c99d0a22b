package midi1

import "fmt"

// DataBytes is a resolved body length: a fixed count, or unbounded until an
// End Of Exclusive status byte.
type DataBytes struct {
	count    uint8
	untilEOX bool
}

func Fixed(n uint8) DataBytes {
	return DataBytes{count: n}
}

func UntilEOX() DataBytes {
	return DataBytes{untilEOX: true}
}

// Count returns the fixed count; ok is false for UntilEOX.
func (d DataBytes) Count() (n int, ok bool) {
	if d.untilEOX {
		return 0, false
	}
	return int(d.count), true
}

func (d DataBytes) UntilEOX() bool {
	return d.untilEOX
}

func (d DataBytes) String() string {
	if d.untilEOX {
		return "until_eox"
	}
	return fmt.Sprintf("fixed(%d)", d.count)
}
