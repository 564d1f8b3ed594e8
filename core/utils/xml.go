package utils

import (
	"encoding/xml"
	"io"

	"golang.org/x/net/html/charset"
)

// NewXMLDecoder returns a strict decoder that also accepts documents declaring
// a legacy encoding (windows-1252, ISO-8859-1, UTF-16) as game data files often do.
func NewXMLDecoder(r io.Reader) *xml.Decoder {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return dec
}
