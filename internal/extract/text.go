// Package extract pulls plain text out of uploaded resumes so an existing
// document can prefill the builder form.
package extract

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

// UnsupportedTypeError is returned for uploads that are not PDF, DOCX or text.
type UnsupportedTypeError struct {
	Mime string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Mime)
}

// DetectMime resolves the effective type of an upload from its declared
// content type, falling back to the file extension and finally to content
// sniffing when the client sent something generic.
func DetectMime(declared, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(declared, ";")[0]))
	switch clean {
	case MimePDF, MimeDOCX, MimeText:
		return clean
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt", ".md":
		return MimeText
	}

	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return MimePDF
	}
	sniffed := strings.Split(http.DetectContentType(data), ";")[0]
	if sniffed == MimeText {
		return MimeText
	}
	if clean == "" {
		return sniffed
	}
	return clean
}

// Text extracts plain text from data of the given mime type.
func Text(mime string, data []byte) (string, error) {
	switch mime {
	case MimeText:
		return strings.TrimSpace(string(data)), nil
	case MimePDF:
		return pdfText(data)
	case MimeDOCX:
		return docxText(data)
	default:
		return "", &UnsupportedTypeError{Mime: mime}
	}
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(text)
	}
	return strings.TrimSpace(sb.String()), nil
}

// PageCount returns the number of pages in a PDF document.
func PageCount(data []byte) (int, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to read pdf: %w", err)
	}
	return r.NumPage(), nil
}

func docxText(data []byte) (string, error) {
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer r.Close()

	return stripDocxXML(r.Editable().GetContent()), nil
}

// stripDocxXML keeps character data and turns paragraph and line breaks into
// newlines.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return strings.TrimSpace(buf.String())
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
