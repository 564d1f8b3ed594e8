package table

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"objmask-workaround/feature/balance/models"
)

const declaration = `<?xml version="1.0"?>` + "\n"

// Write serializes t as balance.xml: ROOT > TABLE > one ENTRY per row, with
// the entry name first and every cell rounded to the nearest integer.
// sink names the output in errors.
func Write(w io.Writer, sink string, t *models.Table) error {
	if err := encode(w, t); err != nil {
		return &models.SourceError{Source: sink, Err: fmt.Errorf("failed to write new balance table: %w", err)}
	}
	return nil
}

func encode(w io.Writer, t *models.Table) error {
	if _, err := io.WriteString(w, declaration); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: elemRoot}}
	tbl := xml.StartElement{Name: xml.Name{Local: elemTable}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	if err := enc.EncodeToken(tbl); err != nil {
		return err
	}

	names := t.Names()
	for i, name := range names {
		attrs := make([]xml.Attr, 0, len(names)+1)
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: attrName}, Value: name})
		for j, target := range names {
			attrs = append(attrs, xml.Attr{
				Name:  xml.Name{Local: target},
				Value: strconv.Itoa(t.Rounded(i, j)),
			})
		}

		entry := xml.StartElement{Name: xml.Name{Local: elemEntry}, Attr: attrs}
		if err := enc.EncodeToken(entry); err != nil {
			return err
		}
		if err := enc.EncodeToken(entry.End()); err != nil {
			return err
		}
	}

	if err := enc.EncodeToken(tbl.End()); err != nil {
		return err
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
