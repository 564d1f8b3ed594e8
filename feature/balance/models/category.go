package models

import "math/bits"

// Category is a single OBJ_MASK flag: the character used in unitrules.xml
// and the attribute name the game uses for it in balance.xml.
type Category struct {
	Code rune   `json:"code"`
	Name string `json:"name"`
}

// Mask is a set of categories, one bit per position in the category table.
type Mask uint32

// Has reports whether bit i is set.
func (m Mask) Has(i int) bool {
	return m&(1<<uint(i)) != 0
}

// With returns m with bit i set.
func (m Mask) With(i int) Mask {
	return m | 1<<uint(i)
}

// Len returns the number of categories in the set.
func (m Mask) Len() int {
	return bits.OnesCount32(uint32(m))
}

// Indexes returns the set bits in ascending order.
func (m Mask) Indexes() []int {
	out := make([]int, 0, m.Len())
	for v := uint32(m); v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros32(v))
	}
	return out
}
