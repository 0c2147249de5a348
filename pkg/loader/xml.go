package loader

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// flattenDocumentXML reduces WordprocessingML to its character data,
// inserting newlines at paragraph and line-break boundaries. Malformed XML
// falls back to the raw bytes rather than failing the load.
func flattenDocumentXML(raw []byte) string {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	var sb strings.Builder

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return string(raw)
		}

		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if sb.Len() > 0 {
					sb.WriteString("\n")
				}
			}
		}
	}

	return strings.TrimSpace(sb.String())
}
