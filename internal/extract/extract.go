// Package extract converts uploaded resume documents into plain text.
//
// Extraction is failure-tolerant by contract: Text never returns an error and
// never panics. Malformed or unreadable input degrades to an empty string,
// which callers must treat as "no usable text" rather than a failure signal.
package extract

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// Text extracts plain text from resume file bytes, dispatching on the file
// extension (case-insensitive). PDF pages and DOCX paragraphs are joined with
// newlines. Unrecognized extensions fall back to best-effort decoding of the
// raw bytes.
func Text(filename string, content []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(content)
	case ".docx":
		return docxText(content)
	default:
		// Best-effort plain-text decode, dropping invalid byte sequences.
		return strings.ToValidUTF8(string(content), "")
	}
}

// pdfText extracts per-page text and joins pages with newlines. The pdf
// library can panic on malformed files, so the recover is part of the
// never-throws contract.
func pdfText(content []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return ""
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			pageText = ""
		}
		pages = append(pages, pageText)
	}
	return strings.Join(pages, "\n")
}

// docxText pulls word/document.xml out of the DOCX zip container, converts
// paragraph boundaries to newlines and strips the remaining markup.
func docxText(content []byte) string {
	zipReader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return ""
	}

	var docXML []byte
	for _, f := range zipReader.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return ""
		}
		docXML, err = io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return ""
		}
		break
	}
	if len(docXML) == 0 {
		return ""
	}

	text := string(docXML)
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	return xmlTagPattern.ReplaceAllString(text, "")
}
