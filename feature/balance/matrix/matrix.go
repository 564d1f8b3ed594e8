// Package matrix rebuilds the dense balance table from the unit index and the
// shipped sparse table.
//
// A cell attacker -> defender is the product, as a ratio against the neutral
// 100, of every rule keyed by the attacker or one of its categories and
// targeting the defender or one of its categories. Missing rules contribute a
// factor of one.
//
// The game applies category rows on top of unit rows, so once the cells are
// computed Neutralize resets every row and column addressed by a category
// name to the neutral value.
package matrix

import (
	"objmask-workaround/feature/balance/models"
	"objmask-workaround/feature/balance/objmask"
)

// Names returns the output order: index names first, then every category
// name the index does not already contain.
func Names(index *models.UnitIndex) []string {
	names := make([]string, 0, index.Len()+objmask.Count)
	names = append(names, index.Names()...)
	for _, c := range objmask.Names() {
		if !index.Has(c) {
			names = append(names, c)
		}
	}
	return names
}

// Compute builds the table and neutralizes its category rows and columns.
func Compute(index *models.UnitIndex, shipped *models.ModifierTable) *models.Table {
	t := Build(index, shipped)
	Neutralize(t)
	return t
}

// Build computes every cell by multiplicative composition without the
// category reset.
func Build(index *models.UnitIndex, shipped *models.ModifierTable) *models.Table {
	t := models.NewTable(Names(index))
	names := t.Names()

	keys := make([][]string, len(names))
	for i, name := range names {
		keys[i] = lookupKeys(name, index.Mask(name))
	}

	for i := range names {
		entries := make([]*models.Entry, len(keys[i]))
		for k, key := range keys[i] {
			entries[k] = shipped.Get(key)
		}
		for j := range names {
			t.SetAt(i, j, compose(entries, keys[j]))
		}
	}
	return t
}

// lookupKeys returns {name} followed by the categories of mask.
func lookupKeys(name string, mask models.Mask) []string {
	keys := make([]string, 1, mask.Len()+1)
	keys[0] = name
	for _, c := range objmask.MaskNames(mask) {
		if c != name {
			keys = append(keys, c)
		}
	}
	return keys
}

func compose(attackers []*models.Entry, defenders []string) float64 {
	balance := models.Neutral
	for _, entry := range attackers {
		if entry == nil {
			continue
		}
		for _, d := range defenders {
			if m, ok := entry.Lookup(d); ok {
				balance *= m / models.Neutral
			}
		}
	}
	return balance
}

// Neutralize sets every cell whose row or column is a category name to the
// neutral value.
func Neutralize(t *models.Table) {
	var cats []int
	for _, c := range objmask.Names() {
		if i, ok := t.Index(c); ok {
			cats = append(cats, i)
		}
	}

	n := t.Len()
	for _, c := range cats {
		for k := 0; k < n; k++ {
			t.SetAt(c, k, models.Neutral)
			t.SetAt(k, c, models.Neutral)
		}
	}
}
