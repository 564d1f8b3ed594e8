package matrix_test

import (
	"testing"

	"objmask-workaround/feature/balance/matrix"
	"objmask-workaround/feature/balance/models"
	"objmask-workaround/feature/balance/objmask"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	armored = "Flag_A_OBJMASK_ARMORED"
	naval   = "Flag_N_OBJMASK_NAVAL"
	pike    = "Flag_5_OBJMASK_PIKE"
	mounted = "Flag_M_OBJMASK_MOUNTED"
)

func mask(t *testing.T, codes string) models.Mask {
	t.Helper()
	var m models.Mask
	for _, c := range codes {
		i, ok := objmask.Lookup(c)
		require.True(t, ok)
		m = m.With(i)
	}
	return m
}

func entry(name string, targets map[string]float64, order ...string) *models.Entry {
	e := models.NewEntry(name)
	for _, k := range order {
		e.Set(k, targets[k])
	}
	return e
}

func cell(t *testing.T, tbl *models.Table, a, b string) float64 {
	t.Helper()
	v, ok := tbl.Lookup(a, b)
	require.True(t, ok, "%s -> %s not in table", a, b)
	return v
}

func TestCompute_MultiplicativeComposition(t *testing.T) {
	index := models.NewUnitIndex()
	index.Insert("Tank", mask(t, "A"))
	index.Insert("Ship", mask(t, "N"))

	shipped := models.NewModifierTable()
	shipped.Put(entry("Tank", map[string]float64{naval: 50}, naval))
	shipped.Put(entry(armored, map[string]float64{"Ship": 50, naval: 50}, "Ship", naval))

	tbl := matrix.Compute(index, shipped)

	v := cell(t, tbl, "Tank", "Ship")
	assert.InDelta(t, 12.5, v, 1e-9)
	i, _ := tbl.Index("Tank")
	j, _ := tbl.Index("Ship")
	assert.Equal(t, 13, tbl.Rounded(i, j))
}

func TestCompute_NeutralFallback(t *testing.T) {
	index := models.NewUnitIndex()
	index.Insert("Scout", mask(t, "M4"))
	index.Insert("Pikeman", mask(t, "5F"))
	index.Insert("Archer", mask(t, "KR"))

	shipped := models.NewModifierTable()
	shipped.Put(entry("Pikeman", map[string]float64{mounted: 200}, mounted))

	tbl := matrix.Compute(index, shipped)

	assert.Equal(t, 200.0, cell(t, tbl, "Pikeman", "Scout"))
	assert.Equal(t, 100.0, cell(t, tbl, "Scout", "Pikeman"))
	assert.Equal(t, 100.0, cell(t, tbl, "Archer", "Scout"))
	assert.Equal(t, 100.0, cell(t, tbl, "Pikeman", "Archer"))
	assert.Equal(t, 100.0, cell(t, tbl, "Pikeman", "Pikeman"))
}

func TestCompute_CategoryNeutrality(t *testing.T) {
	index := models.NewUnitIndex()
	index.Insert("Pikeman", mask(t, "5"))
	index.Insert("Knight", mask(t, "M"))

	shipped := models.NewModifierTable()
	shipped.Put(entry(pike, map[string]float64{mounted: 300, "Knight": 150, pike: 10}, mounted, "Knight", pike))
	shipped.Put(entry("Knight", map[string]float64{pike: 50}, pike))

	tbl := matrix.Compute(index, shipped)

	// the unit-level cells still carry the category rules
	assert.InDelta(t, 450.0, cell(t, tbl, "Pikeman", "Knight"), 1e-9)
	assert.InDelta(t, 50.0, cell(t, tbl, "Knight", "Pikeman"), 1e-9)

	for _, c := range objmask.Names() {
		for _, n := range tbl.Names() {
			assert.Equal(t, 100.0, cell(t, tbl, c, n), "%s -> %s", c, n)
			assert.Equal(t, 100.0, cell(t, tbl, n, c), "%s -> %s", n, c)
		}
	}
}

func TestBuild_KeepsCategoryCellsUntilNeutralized(t *testing.T) {
	index := models.NewUnitIndex()
	index.Insert("Knight", mask(t, "M"))

	shipped := models.NewModifierTable()
	shipped.Put(entry(pike, map[string]float64{mounted: 300}, mounted))
	shipped.Put(entry("Knight", map[string]float64{pike: 50}, pike))

	tbl := matrix.Build(index, shipped)
	assert.Equal(t, 300.0, cell(t, tbl, pike, mounted))
	assert.Equal(t, 50.0, cell(t, tbl, "Knight", pike))

	matrix.Neutralize(tbl)
	assert.Equal(t, 100.0, cell(t, tbl, pike, mounted))
	assert.Equal(t, 100.0, cell(t, tbl, "Knight", pike))
}

func TestCompute_SquareAndOrdered(t *testing.T) {
	index := models.NewUnitIndex()
	index.Insert("Scout", mask(t, "M"))
	index.Insert("SIEGE", 0)
	index.Insert(naval, 0)

	tbl := matrix.Compute(index, models.NewModifierTable())

	names := tbl.Names()
	require.Len(t, names, 3+objmask.Count-1)
	assert.Equal(t, []string{"Scout", "SIEGE", naval, armored}, names[:4])
	for i := range names {
		assert.Len(t, tbl.Row(i), len(names))
	}
}

func TestCompute_Deterministic(t *testing.T) {
	build := func() *models.Table {
		index := models.NewUnitIndex()
		index.Insert("Tank", mask(t, "AVL"))
		index.Insert("Ship", mask(t, "NL"))
		shipped := models.NewModifierTable()
		shipped.Put(entry(armored, map[string]float64{naval: 33.3, "Ship": 71}, naval, "Ship"))
		shipped.Put(entry("Flag_L_OBJMASK_LARGE", map[string]float64{"Flag_L_OBJMASK_LARGE": 90}, "Flag_L_OBJMASK_LARGE"))
		return matrix.Compute(index, shipped)
	}

	a, b := build(), build()
	require.Equal(t, a.Names(), b.Names())
	for i := range a.Names() {
		assert.Equal(t, a.Row(i), b.Row(i))
	}
}
