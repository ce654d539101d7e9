package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
)

const docxMainDocument = "word/document.xml"

// extractDocxText reads the main document part of an Office Open XML
// word-processing package and concatenates its textual runs (w:t elements) in
// document order. Paragraph ends (w:p) and explicit breaks (w:br) become
// newlines so the output reads like the document.
func extractDocxText(content []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("docx open: %w", err)
	}

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == docxMainDocument {
			document = f
			break
		}
	}
	if document == nil {
		return "", errors.New("docx package has no " + docxMainDocument)
	}

	rc, err := document.Open()
	if err != nil {
		return "", fmt.Errorf("docx open %s: %w", docxMainDocument, err)
	}
	defer rc.Close()

	return readDocxRuns(rc)
}

func readDocxRuns(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var sb strings.Builder
	inRunText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("docx xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inRunText = true
			case "br":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRunText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inRunText {
				sb.Write(t)
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
