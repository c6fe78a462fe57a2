package services

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"career-navigator/internal/models"
)

// DocumentParserService converts a raw resume document into plain text.
type DocumentParserService interface {
	ExtractText(doc models.ResumeDocument) (string, error)
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

// ExtractText implements DocumentParserService. The document bytes are
// staged to a collision-free temporary file for parser-library
// compatibility; the file is removed on every exit path.
func (p *documentParserService) ExtractText(doc models.ResumeDocument) (string, error) {
	switch doc.MediaType {
	case models.MediaTypePDF:
		return p.extractPDF(doc.Data)
	case models.MediaTypeDOCX:
		return p.extractDOCX(doc.Data)
	default:
		return "", models.ErrUnsupportedFormat
	}
}

func (p *documentParserService) extractPDF(data []byte) (string, error) {
	path, cleanup, err := stageTemp(data, "resume-*.pdf")
	if err != nil {
		return "", err
	}
	defer cleanup()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrExtractionFailed, err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages but keep the rest of the document.
			continue
		}

		if textBuilder.Len() > 0 {
			textBuilder.WriteString("\n")
		}
		textBuilder.WriteString(text)
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text content found in PDF", models.ErrExtractionFailed)
	}

	return text, nil
}

func (p *documentParserService) extractDOCX(data []byte) (string, error) {
	path, cleanup, err := stageTemp(data, "resume-*.docx")
	if err != nil {
		return "", err
	}
	defer cleanup()

	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrExtractionFailed, err)
	}
	defer r.Close()

	text := docxContentToText(r.Editable().GetContent())
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text content found in DOCX", models.ErrExtractionFailed)
	}

	return text, nil
}

// stageTemp writes data to a temporary file and returns its path together
// with a cleanup func. os.CreateTemp guarantees a collision-free name, so
// concurrent extractions never share a staged file.
func stageTemp(data []byte, pattern string) (string, func(), error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("%w: staging document: %v", models.ErrExtractionFailed, err)
	}
	path := f.Name()
	cleanup := func() { os.Remove(path) }

	if _, err := f.Write(data); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("%w: staging document: %v", models.ErrExtractionFailed, err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: staging document: %v", models.ErrExtractionFailed, err)
	}

	return path, cleanup, nil
}

var (
	docxParagraphRe = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>`)
	docxRunRe       = regexp.MustCompile(`(?s)<w:t(?: [^>]*)?>(.*?)</w:t>`)
	xmlUnescaper    = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
)

// docxContentToText flattens WordprocessingML into plain text: one line
// per paragraph, text runs within a paragraph concatenated in order.
func docxContentToText(content string) string {
	paragraphs := docxParagraphRe.FindAllString(content, -1)

	lines := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		var line strings.Builder
		for _, run := range docxRunRe.FindAllStringSubmatch(paragraph, -1) {
			line.WriteString(xmlUnescaper.Replace(run[1]))
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}
