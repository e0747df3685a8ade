// Package fetch - resume.go reduces a hosted resume of any supported content type to text.
package fetch

import (
	"context"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/extract"
	"go.uber.org/zap"
)

// ResumeText fetches a hosted resume and returns its plain text.
//
// Plain text responses are returned cleaned. PDF and DOCX documents go through
// package extract. HTML pages are reduced to their main content, and when
// opts.UseBrowser is set a page with too little text is rendered in a headless
// browser and extracted again.
func ResumeText(ctx context.Context, urlStr string, opts *Options) (string, error) {
	opts = opts.withDefaults()

	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return "", err
	}

	mediaType, _, _ := mime.ParseMediaType(result.ContentType)
	switch {
	case mediaType == "text/plain":
		return nonEmpty(urlStr, extract.CleanText(result.HTML()))
	case mediaType == "application/pdf",
		mediaType == "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		mediaType == "application/octet-stream":
		text, err := extract.Extract(documentName(result.URL), result.Body)
		if err != nil {
			return "", &Error{URL: urlStr, Message: "failed to extract document text", Cause: err}
		}
		return nonEmpty(urlStr, text)
	}

	text, err := ExtractMainText(result.HTML(), ResumeSelectors())
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract page text", Cause: err}
	}

	if opts.UseBrowser && ShouldUseBrowser(text) {
		opts.Logger.Info("page text is short, rendering with browser",
			zap.String("url", urlStr), zap.Int("chars", len(text)))
		html, err := WithBrowser(ctx, urlStr, opts.Timeout, opts.Logger)
		if err != nil {
			opts.Logger.Warn("browser rendering failed", zap.String("url", urlStr), zap.Error(err))
		} else if rendered, err := ExtractMainText(html, ResumeSelectors()); err == nil && len(rendered) > len(text) {
			text = rendered
		}
	}

	return nonEmpty(urlStr, text)
}

func nonEmpty(urlStr, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &Error{URL: urlStr, Message: "no readable text found"}
	}
	return text, nil
}

func documentName(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Path == "" {
		return ""
	}
	return path.Base(u.Path)
}
