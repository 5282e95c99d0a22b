// Package bitfield extracts sub-word fields from fixed-width wire words.
//
// Bit numbering is MSB-first: bit 31 is the most significant bit of a word,
// bit 7 the most significant bit of a byte. Nibble and byte indexes count
// from the most significant end.
package bitfield

const (
	wordBits   = 32
	nibbleMask = 0xF
	byteMask   = 0xFF
)

// Bits returns bits hi..lo (inclusive) of word, shifted down to bit 0.
// An inverted or out-of-range span yields 0.
func Bits(word uint32, hi, lo uint) uint32 {
	if hi < lo || hi >= wordBits {
		return 0
	}
	width := hi - lo + 1
	if width == wordBits {
		return word
	}
	return (word >> lo) & (1<<width - 1)
}

// Nibble returns nibble index of word; 0 is bits 31..28, 7 is bits 3..0.
func Nibble(word uint32, index uint) uint8 {
	if index > 7 {
		return 0
	}
	shift := wordBits - 4*(index+1)
	return uint8(word >> shift & nibbleMask)
}

// Byte returns byte index of word; 0 is bits 31..24, 3 is bits 7..0.
func Byte(word uint32, index uint) uint8 {
	if index > 3 {
		return 0
	}
	shift := wordBits - 8*(index+1)
	return uint8(word >> shift & byteMask)
}

func HighNibble(b uint8) uint8 {
	return b >> 4
}

func LowNibble(b uint8) uint8 {
	return b & nibbleMask
}

// Bit reports whether bit n (0 = LSB, 7 = MSB) of b is set.
func Bit(b uint8, n uint) bool {
	if n > 7 {
		return false
	}
	return b&(1<<n) != 0
}
