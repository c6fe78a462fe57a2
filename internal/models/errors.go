package models

import "errors"

// Extraction and completion errors.
var (
	// ErrUnsupportedFormat is returned for any media type other than PDF or DOCX.
	ErrUnsupportedFormat = errors.New("unsupported file format: please upload a PDF or DOCX file")

	// ErrExtractionFailed wraps parse failures on malformed document bytes.
	ErrExtractionFailed = errors.New("failed to extract text from document")

	// ErrCompletionFailed wraps network/auth/rate-limit errors from the
	// language-model service. Callers own the fallback text.
	ErrCompletionFailed = errors.New("language model completion failed")

	// ErrModelUnavailable marks the entity model as not usable; keyword
	// extraction degrades to an empty set rather than surfacing this.
	ErrModelUnavailable = errors.New("entity model unavailable")
)

// Interview session errors.
var (
	ErrSessionNotFound   = errors.New("interview session not found")
	ErrSessionEnded      = errors.New("interview session has ended")
	ErrEmptyRole         = errors.New("interview role must not be empty")
	ErrEmptyAnswer       = errors.New("answer must not be empty")
	ErrNoPendingQuestion = errors.New("no unanswered question in this session")
)
