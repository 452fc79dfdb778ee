package board

import "math/bits"

// Bitmask is a 32-bit board mask where bit i corresponds to playable square i
// (external square i+1).
type Bitmask uint32

// Edge masks for the packed square numbering. Shifting a mask by 4 is always
// safe; shifts by 3 and 5 are only valid from the squares selected here,
// anything else would wrap around a column edge.
const (
	MaskL3 Bitmask = 0x07070707
	MaskL5 Bitmask = 0xE0E0E0E0
	MaskR3 Bitmask = 0xE0E0E0E0
	MaskR5 Bitmask = 0x07070707
)

// SquareMask returns a bitmask with only the given square set.
func SquareMask(s Square) Bitmask {
	return 1 << s
}

// Set sets the bit at the given square.
func (m Bitmask) Set(s Square) Bitmask {
	return m | (1 << s)
}

// Clear clears the bit at the given square.
func (m Bitmask) Clear(s Square) Bitmask {
	return m &^ (1 << s)
}

// IsSet returns true if the bit at the given square is set.
func (m Bitmask) IsSet(s Square) bool {
	return m&(1<<s) != 0
}

// PopCount returns the number of set bits.
func (m Bitmask) PopCount() int {
	return bits.OnesCount32(uint32(m))
}

// LSB returns the lowest set square index.
func (m Bitmask) LSB() Square {
	if m == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros32(uint32(m)))
}

// PopLSB removes and returns the lowest set square.
func (m *Bitmask) PopLSB() Square {
	s := m.LSB()
	*m &= *m - 1
	return s
}

// Empty returns true if no bits are set.
func (m Bitmask) Empty() bool {
	return m == 0
}

// Squares returns all set squares in ascending order.
func (m Bitmask) Squares() []Square {
	out := make([]Square, 0, m.PopCount())
	for m != 0 {
		out = append(out, m.PopLSB())
	}
	return out
}
