package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ppiankov/claimsort/internal/model"
	"golang.org/x/net/html"
)

// PlaintextProvider reads the uploaded bytes directly instead of simulating
// OCR. HTML uploads are reduced to their visible text; everything else passes
// through verbatim. Useful for running the pipeline on real text documents
// without an ML backend.
type PlaintextProvider struct{}

// NewPlaintextProvider creates a plaintext provider
func NewPlaintextProvider() *PlaintextProvider {
	return &PlaintextProvider{}
}

// Name returns the provider name
func (p *PlaintextProvider) Name() string {
	return "plaintext"
}

// ExtractText returns the upload content as text with full confidence.
// An empty upload is an extraction failure; the caller degrades the document.
func (p *PlaintextProvider) ExtractText(ctx context.Context, upload model.FileUpload) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(upload.Content) == 0 {
		return nil, fmt.Errorf("upload %q has no content", upload.Name)
	}

	text := string(upload.Content)

	ext := strings.ToLower(filepath.Ext(upload.Name))
	if ext == ".html" || ext == ".htm" {
		stripped, err := visibleText(text)
		if err != nil {
			return nil, fmt.Errorf("parse html: %w", err)
		}
		text = stripped
	}

	return &Result{Text: text, Confidence: 1.0}, nil
}

// visibleText extracts text nodes from HTML, skipping scripts and styles
func visibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String()), nil
}
