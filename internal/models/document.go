package models

import (
	"path/filepath"
	"strings"
)

// MediaType identifies the container format of an uploaded resume.
type MediaType string

const (
	MediaTypePDF  MediaType = "application/pdf"
	MediaTypeDOCX MediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ResumeDocument is the raw uploaded resume. It is consumed exactly once
// by text extraction and not retained afterwards.
type ResumeDocument struct {
	Data      []byte
	MediaType MediaType
}

// MediaTypeFromFilename resolves the media type from the upload's file
// extension. Returns ErrUnsupportedFormat for anything other than
// .pdf or .docx.
func MediaTypeFromFilename(filename string) (MediaType, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MediaTypePDF, nil
	case ".docx":
		return MediaTypeDOCX, nil
	default:
		return "", ErrUnsupportedFormat
	}
}
