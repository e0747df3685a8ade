// Package extract - docx.go provides DOCX text extraction.
package extract

import (
	"bytes"
	"html"
	"regexp"

	"github.com/nguyenthenguyen/docx"
)

// docxRewrites run in order. Tab stop definitions inside <w:tabs> are
// paragraph properties, not tab characters, so they go before <w:tab> is matched.
var docxRewrites = []struct {
	pattern *regexp.Regexp
	with    string
}{
	{regexp.MustCompile(`(?s)<w:tabs\b[^>]*>.*?</w:tabs>`), ""},
	{regexp.MustCompile(`</w:p>`), "\n"},
	{regexp.MustCompile(`<w:(?:br|cr)\b[^>]*/>`), "\n"},
	{regexp.MustCompile(`<w:tab\b[^>]*/>`), "\t"},
	{regexp.MustCompile(`<[^>]*>`), ""},
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Format: string(FormatDOCX), Message: "failed to open document", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return documentXMLText(doc.Editable().GetContent()), nil
}

// documentXMLText flattens WordprocessingML into text, one paragraph per line.
func documentXMLText(content string) string {
	for _, r := range docxRewrites {
		content = r.pattern.ReplaceAllString(content, r.with)
	}
	return html.UnescapeString(content)
}
