package docparse

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/unidoc/unioffice/document"
)

// Extraction is the content pulled out of an uploaded Word document.
type Extraction struct {
	Text       string
	HTML       string
	ImageCount int
}

// Extract reads a .docx payload and returns its plain text, a simple HTML
// rendering (one <p> per paragraph) and the number of embedded images.
func Extract(data []byte) (*Extraction, error) {
	doc, err := document.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	var textParts []string
	var htmlBuf strings.Builder

	for _, para := range doc.Paragraphs() {
		var sb strings.Builder
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}

		line := strings.TrimSpace(sb.String())
		if line == "" {
			continue
		}

		textParts = append(textParts, line)
		htmlBuf.WriteString("<p>")
		htmlBuf.WriteString(html.EscapeString(line))
		htmlBuf.WriteString("</p>\n")
	}

	return &Extraction{
		Text:       strings.Join(textParts, "\n"),
		HTML:       htmlBuf.String(),
		ImageCount: len(doc.Images),
	}, nil
}
