// Package extract turns uploaded resume files into plain text for analysis.
package extract

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Format identifies a supported resume file format.
type Format string

// Supported formats.
const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
	FormatHTML     Format = "html"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var extensionFormats = map[string]Format{
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
	".pdf":      FormatPDF,
	".docx":     FormatDOCX,
	".html":     FormatHTML,
	".htm":      FormatHTML,
}

// SupportedExtensions lists the file extensions Extract accepts.
func SupportedExtensions() []string {
	return []string{".txt", ".md", ".pdf", ".docx", ".html", ".htm"}
}

// DetectFormat picks a format from the file extension, falling back to
// sniffing the content when the extension is missing or unknown.
func DetectFormat(filename string, data []byte) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if f, ok := extensionFormats[ext]; ok {
		return f, nil
	}
	if ext == ".doc" {
		return "", &UnsupportedFormatError{Format: "doc"}
	}

	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is("application/pdf"):
		return FormatPDF, nil
	case mtype.Is(docxMIME):
		return FormatDOCX, nil
	case mtype.Is("text/html"):
		return FormatHTML, nil
	case isText(mtype):
		return FormatText, nil
	}

	format := strings.TrimPrefix(ext, ".")
	if format == "" {
		format = mtype.String()
	}
	return "", &UnsupportedFormatError{Format: format}
}

// Extract returns the cleaned plain text of a resume file.
func Extract(filename string, data []byte) (string, error) {
	format, err := DetectFormat(filename, data)
	if err != nil {
		return "", err
	}

	var raw string
	switch format {
	case FormatText, FormatMarkdown:
		raw = strings.TrimPrefix(string(data), "\ufeff")
	case FormatPDF:
		raw, err = pdfText(data)
	case FormatDOCX:
		raw, err = docxText(data)
	case FormatHTML:
		raw, err = htmlText(data)
	}
	if err != nil {
		return "", err
	}

	text := CleanText(strings.ToValidUTF8(raw, ""))
	if text == "" && (format == FormatPDF || format == FormatDOCX) {
		return "", &Error{Format: string(format), Message: "no extractable text"}
	}
	return text, nil
}

func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
