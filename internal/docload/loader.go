// Package docload reads contract documents into plain text. Binary-format
// parsing is delegated to libraries; the analysis core only ever sees the
// extracted text.
package docload

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/psarda/clauselens/internal/segment"
)

// keep basic punctuation and currency marks, drop the rest of the symbols
var specialCharsRe = regexp.MustCompile(`[^\p{L}\p{N}\s.,;:!?()\-₹$%/।]`)

// Load reads a document from disk and returns its normalized text.
// Supported: .txt, .md, .pdf, .html/.htm. DOCX is not supported;
// convert to one of the supported formats first.
func Load(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", "":
		return loadText(path)
	case ".pdf":
		return loadPDF(path)
	case ".html", ".htm":
		return loadHTML(path)
	case ".docx", ".doc":
		return "", fmt.Errorf("docx is not supported, convert to pdf or txt first: %s", path)
	default:
		return "", fmt.Errorf("unsupported document type: %s", path)
	}
}

func loadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return Preprocess(string(data)), nil
}

func loadPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	return Preprocess(buf.String()), nil
}

func loadHTML(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	text, err := FromHTML(string(data))
	if err != nil {
		return "", err
	}
	return text, nil
}

// Preprocess normalizes whitespace and strips characters that confuse the
// pattern catalogue, keeping basic punctuation and currency marks
func Preprocess(text string) string {
	text = specialCharsRe.ReplaceAllString(text, " ")
	return segment.Normalize(text)
}
