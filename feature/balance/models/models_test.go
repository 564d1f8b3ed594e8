package models

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	var m Mask
	m = m.With(0).With(13).With(31).With(13)

	assert.True(t, m.Has(13))
	assert.False(t, m.Has(1))
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []int{0, 13, 31}, m.Indexes())
}

func TestUnitIndex_InsertMerges(t *testing.T) {
	x := NewUnitIndex()
	_, existed := x.Insert("Pikeman", Mask(0).With(30))
	assert.False(t, existed)

	prev, existed := x.Insert("Pikeman", Mask(0).With(5))
	assert.True(t, existed)
	assert.Equal(t, Mask(0).With(30), prev)
	assert.Equal(t, Mask(0).With(30).With(5), x.Mask("Pikeman"))
	assert.Equal(t, []string{"Pikeman"}, x.Names())
}

func TestModifierTable_PutKeepsPosition(t *testing.T) {
	tbl := NewModifierTable()
	tbl.Put(NewEntry("A"))
	tbl.Put(NewEntry("B"))
	replaced := NewEntry("A")
	replaced.Set("B", 10)
	tbl.Put(replaced)

	assert.Equal(t, []string{"A", "B"}, tbl.Names())
	v, ok := tbl.Lookup("A", "B")
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)

	_, ok = tbl.Lookup("missing", "B")
	assert.False(t, ok)
}

func TestTable_NewIsNeutralAndSquare(t *testing.T) {
	tbl := NewTable([]string{"A", "B", "A"})

	assert.Equal(t, []string{"A", "B"}, tbl.Names())
	for i := range tbl.Names() {
		assert.Equal(t, []float64{Neutral, Neutral}, tbl.Row(i))
	}
}

func TestTable_Rounded(t *testing.T) {
	tbl := NewTable([]string{"A"})
	for _, tt := range []struct {
		v    float64
		want int
	}{{12.5, 13}, {12.49, 12}, {0.5, 1}, {99.999, 100}} {
		t.Run(strconv.FormatFloat(tt.v, 'f', -1, 64), func(t *testing.T) {
			tbl.SetAt(0, 0, tt.v)
			assert.Equal(t, tt.want, tbl.Rounded(0, 0))
		})
	}
}

func TestTable_RoundedSaturates(t *testing.T) {
	tbl := NewTable([]string{"A"})
	for _, tt := range []struct {
		name string
		v    float64
		want int
	}{
		{"Huge", 1e20 * 1e20, math.MaxInt32},
		{"JustAbove", float64(math.MaxInt32) + 10, math.MaxInt32},
		{"HugeNegative", -1e40, math.MinInt32},
		{"PosInf", math.Inf(1), math.MaxInt32},
		{"NegInf", math.Inf(-1), math.MinInt32},
		{"NaN", math.NaN(), 0},
		{"MaxInt32", float64(math.MaxInt32), math.MaxInt32},
	} {
		t.Run(tt.name, func(t *testing.T) {
			tbl.SetAt(0, 0, tt.v)
			assert.Equal(t, tt.want, tbl.Rounded(0, 0))
		})
	}
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	d.Warnf(WarnUnknownCategory, "Galley", "unknown flag '%c'", '?')
	d.Warnf(WarnConflictingDuplicate, "Pikeman", "differs")

	assert.Equal(t, 1, d.Count(WarnUnknownCategory))
	assert.Equal(t, "unknown flag '?'", d.Warnings[0].Message)

	var nilDiag *Diagnostics
	assert.NotPanics(t, func() { nilDiag.Warnf(WarnUnknownCategory, "x", "y") })
}

func TestModifierError_Unwrap(t *testing.T) {
	cause := errors.New("bad syntax")
	err := &ModifierError{Entry: "A", Attribute: "B", Value: "x", Err: cause}

	assert.ErrorIs(t, err, ErrInvalidModifier)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `"x"`)
}
