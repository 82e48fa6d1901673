package services

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/vishalnotfound/AI-Interview-Agent/internal/models"
)

type ResumeExtractor interface {
	ExtractText(data []byte, filename string) (string, error)
}

type resumeExtractor struct{}

func NewResumeExtractor() ResumeExtractor {
	return &resumeExtractor{}
}

// ExtractText converts an uploaded resume into plain text. The format is
// decided by the filename suffix only, case-insensitively.
func (e *resumeExtractor) ExtractText(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return e.extractPDF(data)
	case ".docx", ".doc":
		return e.extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %q (expected .pdf or .docx)", models.ErrUnsupportedFormat, ext)
	}
}

func (e *resumeExtractor) extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("%w: PDF contains no extractable text (image-only scan?)", models.ErrEmptyExtraction)
	}

	return text, nil
}

var docxTextRegex = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

func (e *resumeExtractor) extractDOCX(data []byte) (string, error) {
	d, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer d.Close()

	content := d.Editable().GetContent()

	// Rebuild paragraphs from the raw document XML
	var lines []string
	for _, para := range strings.Split(content, "</w:p>") {
		var lineBuilder strings.Builder
		for _, match := range docxTextRegex.FindAllStringSubmatch(para, -1) {
			lineBuilder.WriteString(html.UnescapeString(match[1]))
		}
		if line := strings.TrimSpace(lineBuilder.String()); line != "" {
			lines = append(lines, line)
		}
	}

	text := strings.Join(lines, "\n")
	if text == "" {
		return "", fmt.Errorf("%w: DOCX contains no extractable text", models.ErrEmptyExtraction)
	}

	return text, nil
}
