// Package rules builds the unit category index from unitrules.xml.
//
// Each UNIT element contributes its NAME and OBJ_MASK children. Names are
// normalized the way balance.xml spells them (spaces become underscores,
// apostrophes are dropped), flags are translated through the objmask table,
// and a fixed list of meta names is appended once all units are read.
package rules

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"objmask-workaround/core/utils"
	"objmask-workaround/feature/balance/models"
	"objmask-workaround/feature/balance/objmask"
)

const (
	elemUnit    = "UNIT"
	elemName    = "NAME"
	elemObjMask = "OBJ_MASK"
)

// MetaNames are balance.xml entries that have no unit record but take part
// in the table as pure categories.
var MetaNames = []string{
	"SIEGE",
	"FORTS",
	"TOWERS",
	"CITIES",
	"OBSPOST",
	"BUILDINGS",
	"UNITS",
	"AGE_0",
	"AGE_1",
	"AGE_2",
	"AGE_3",
	"AGE_4",
	"AGE_5",
	"AGE_6",
	"AGE_7",
}

// DefaultIgnore lists wildlife and herd units that never fight.
var DefaultIgnore = []string{
	"Fur_Trapper",
	"Wild_Bird",
	"Flock_Bird",
	"Gull_Bird",
	"Farm_Pig",
	"Farm_Chicken",
	"Herd_Horse",
	"Herd_Sheep",
	"Herd_Bison",
	"Herd_Bear",
	"Herd_Fish",
	"Herd_Whales",
	"Herd_Peacock",
}

// Record is one UNIT element.
type Record struct {
	Name  string
	Flags string
}

// NormalizeName converts a unitrules.xml name to its balance.xml spelling.
func NormalizeName(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ReplaceAll(name, "'", "")
}

// Builder accumulates unit records into an index.
type Builder struct {
	index  *models.UnitIndex
	ignore map[string]struct{}
	diag   *models.Diagnostics
}

// NewBuilder creates a builder. Ignored names are compared after normalization.
func NewBuilder(ignore []string, diag *models.Diagnostics) *Builder {
	set := make(map[string]struct{}, len(ignore))
	for _, name := range ignore {
		set[NormalizeName(strings.TrimSpace(name))] = struct{}{}
	}
	return &Builder{
		index:  models.NewUnitIndex(),
		ignore: set,
		diag:   diag,
	}
}

// Add indexes a single record.
func (b *Builder) Add(rec Record) {
	name := NormalizeName(rec.Name)
	if _, skip := b.ignore[name]; skip {
		return
	}

	mask := b.translate(name, rec.Flags)
	if prev, existed := b.index.Insert(name, mask); existed && prev != mask {
		b.diag.Warnf(models.WarnConflictingDuplicate, name,
			"different units with identical names have differing OBJ_MASK values (%q)", name)
	}
}

func (b *Builder) translate(unit, flags string) models.Mask {
	var mask models.Mask
	for _, c := range flags {
		i, ok := objmask.Lookup(c)
		if !ok {
			b.diag.Warnf(models.WarnUnknownCategory, unit, "unknown OBJ_MASK flag found '%c'", c)
			continue
		}
		mask = mask.With(i)
	}
	return mask
}

// Finish appends the meta names and returns the index.
func (b *Builder) Finish() *models.UnitIndex {
	for _, name := range MetaNames {
		if !b.index.Has(name) {
			b.index.Insert(name, 0)
		}
	}
	return b.index
}

// Build indexes records in order and appends the meta names.
func Build(records []Record, ignore []string, diag *models.Diagnostics) *models.UnitIndex {
	b := NewBuilder(ignore, diag)
	for _, rec := range records {
		b.Add(rec)
	}
	return b.Finish()
}

// Parse reads unitrules.xml from r. source names the input in errors.
func Parse(r io.Reader, source string, ignore []string, diag *models.Diagnostics) (*models.UnitIndex, error) {
	b := NewBuilder(ignore, diag)
	if err := Decode(r, b.Add); err != nil {
		return nil, &models.SourceError{Source: source, Err: err}
	}
	return b.Finish(), nil
}

// Decode streams UNIT records from r to fn.
func Decode(r io.Reader, fn func(Record)) error {
	dec := utils.NewXMLDecoder(r)

	var (
		inUnit  bool
		field   string
		sawName bool
		name    strings.Builder
		flags   strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", models.ErrMalformedSource, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case elemUnit:
				if inUnit {
					line, _ := dec.InputPos()
					return fmt.Errorf("%w: nested %s element at line %d", models.ErrMalformedSource, elemUnit, line)
				}
				inUnit, field, sawName = true, "", false
				name.Reset()
				flags.Reset()
			case elemName, elemObjMask:
				if inUnit {
					field = t.Name.Local
					if field == elemName {
						sawName = true
					}
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case elemName, elemObjMask:
				if field == t.Name.Local {
					field = ""
				}
			case elemUnit:
				if !inUnit {
					continue
				}
				inUnit = false
				unitName := strings.TrimSpace(name.String())
				if !sawName || unitName == "" {
					line, _ := dec.InputPos()
					return fmt.Errorf("%w: %s element ending at line %d has no %s", models.ErrMissingName, elemUnit, line, elemName)
				}
				fn(Record{Name: unitName, Flags: strings.TrimSpace(flags.String())})
			}
		case xml.CharData:
			switch field {
			case elemName:
				name.Write(t)
			case elemObjMask:
				flags.Write(t)
			}
		}
	}

	return nil
}
