// Package table reads the sparse modifier table from balance.xml and writes
// the rebuilt dense table back in the same format.
package table

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"objmask-workaround/core/utils"
	"objmask-workaround/feature/balance/models"
)

const (
	elemRoot  = "ROOT"
	elemTable = "TABLE"
	elemEntry = "ENTRY"
	attrName  = "name"
)

// Parse reads every ENTRY element of r into a sparse table. source names
// the input in errors.
func Parse(r io.Reader, source string) (*models.ModifierTable, error) {
	t, err := decode(r)
	if err != nil {
		return nil, &models.SourceError{Source: source, Err: err}
	}
	return t, nil
}

func decode(r io.Reader) (*models.ModifierTable, error) {
	dec := utils.NewXMLDecoder(r)
	t := models.NewModifierTable()

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrMalformedSource, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != elemEntry {
			continue
		}

		entry, err := parseEntry(start)
		if err != nil {
			line, _ := dec.InputPos()
			return nil, fmt.Errorf("%s element at line %d: %w", elemEntry, line, err)
		}
		t.Put(entry)
	}
}

func parseEntry(start xml.StartElement) (*models.Entry, error) {
	var name string
	for _, attr := range start.Attr {
		if attr.Name.Space == "" && attr.Name.Local == attrName {
			name = attr.Value
		}
	}
	if name == "" {
		return nil, fmt.Errorf("%w: no %q attribute found", models.ErrMissingName, attrName)
	}

	entry := models.NewEntry(name)
	for _, attr := range start.Attr {
		key := attrKey(attr.Name)
		if key == attrName {
			continue
		}
		v, err := parseModifier(attr.Value)
		if err != nil {
			return nil, &models.ModifierError{Entry: name, Attribute: key, Value: attr.Value, Err: err}
		}
		entry.Set(key, v)
	}
	return entry, nil
}

func attrKey(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func parseModifier(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("value is not finite")
	}
	return v, nil
}
