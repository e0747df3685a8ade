// Package extract - html.go provides HTML text extraction.
package extract

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
)

const blockElements = "p, div, section, article, header, footer, li, tr, h1, h2, h3, h4, h5, h6, dt, dd, blockquote, pre"

func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &Error{Format: string(FormatHTML), Message: "failed to parse HTML", Cause: err}
	}

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}
	return SelectionText(root), nil
}

// SelectionText returns the text of an HTML selection with each block
// element on its own line and list items prefixed with a bullet.
// The selection's nodes are modified in place.
func SelectionText(sel *goquery.Selection) string {
	sel.Find("script, style, noscript, template").Remove()
	sel.Find("br").ReplaceWithHtml("\n")
	sel.Find("li").PrependHtml("• ")
	sel.Find(blockElements).AppendHtml("\n")
	return sel.Text()
}
