package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-navigator/internal/models"
)

// stubExecutor replays canned responses per task. Safe for the analyzer's
// concurrent role/ATS/summary calls.
type stubExecutor struct {
	mu        sync.Mutex
	responses map[TaskID]string
	errs      map[TaskID]error
	calls     []TaskID
	lastVars  map[string]string
}

func (s *stubExecutor) Run(_ context.Context, task TaskID, vars map[string]string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, task)
	s.lastVars = vars
	if err := s.errs[task]; err != nil {
		return "", err
	}
	return s.responses[task], nil
}

type stubParser struct {
	text string
	err  error
}

func (s *stubParser) ExtractText(models.ResumeDocument) (string, error) {
	return s.text, s.err
}

type stubKeywords struct {
	words []string
	text  string
}

func (s *stubKeywords) ExtractKeywords(_ context.Context, text string) []string {
	s.text = text
	return s.words
}

func (s *stubKeywords) Enabled() bool { return true }

func pdfDoc() models.ResumeDocument {
	return models.ResumeDocument{Data: []byte("%PDF-"), MediaType: models.MediaTypePDF}
}

func TestAnalyze_FullyPopulatedOnSuccess(t *testing.T) {
	executor := &stubExecutor{responses: map[TaskID]string{
		TaskRole:      "Backend Engineer",
		TaskATS:       "ATS Score: 82/100",
		TaskSummarize: "Seasoned backend engineer.",
	}}
	keywords := &stubKeywords{words: []string{"Go", "Postgres"}}
	analyzer := NewAnalyzerService(&stubParser{text: "resume body"}, executor, keywords)

	result := analyzer.Analyze(context.Background(), pdfDoc())

	require.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, "resume body", result.ResumeText)
	assert.Equal(t, "Backend Engineer", result.Role)
	assert.Equal(t, "ATS Score: 82/100", result.ATSFeedback)
	assert.Equal(t, "Seasoned backend engineer.", result.Summary)
	assert.Equal(t, []string{"Go", "Postgres"}, result.Keywords)
	assert.Equal(t, "resume body", keywords.text, "keywords derive from extracted text")
	assert.ElementsMatch(t, []TaskID{TaskRole, TaskATS, TaskSummarize}, executor.calls)
}

func TestAnalyze_ExtractionFailureAbortsPipeline(t *testing.T) {
	executor := &stubExecutor{}
	analyzer := NewAnalyzerService(
		&stubParser{err: models.ErrExtractionFailed},
		executor,
		&stubKeywords{words: []string{"unused"}},
	)

	result := analyzer.Analyze(context.Background(), pdfDoc())

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Empty(t, result.ResumeText)
	assert.Empty(t, result.Role)
	assert.Empty(t, result.ATSFeedback)
	assert.Empty(t, result.Summary)
	assert.Empty(t, result.Keywords)
	assert.Empty(t, executor.calls, "no model call after extraction failure")
}

func TestAnalyze_ModelFailuresFallBackPerField(t *testing.T) {
	failure := errors.New("rate limited")
	executor := &stubExecutor{errs: map[TaskID]error{
		TaskRole:      failure,
		TaskATS:       failure,
		TaskSummarize: failure,
	}}
	analyzer := NewAnalyzerService(&stubParser{text: "resume body"}, executor, &stubKeywords{})

	result := analyzer.Analyze(context.Background(), pdfDoc())

	require.True(t, result.Success, "model failures are absorbed, not surfaced")
	assert.Equal(t, "General Professional", result.Role)
	assert.Equal(t, "Unable to generate ATS feedback at this time.", result.ATSFeedback)
	assert.Equal(t, "Unable to generate resume summary at this time.", result.Summary)
}

func TestAnalyze_PartialDegradation(t *testing.T) {
	executor := &stubExecutor{
		responses: map[TaskID]string{
			TaskRole:      "Data Scientist",
			TaskSummarize: "Strong ML background.",
		},
		errs: map[TaskID]error{TaskATS: errors.New("timeout")},
	}
	analyzer := NewAnalyzerService(&stubParser{text: "resume body"}, executor, &stubKeywords{})

	result := analyzer.Analyze(context.Background(), pdfDoc())

	require.True(t, result.Success)
	assert.Equal(t, "Data Scientist", result.Role)
	assert.Equal(t, "Unable to generate ATS feedback at this time.", result.ATSFeedback)
	assert.Equal(t, "Strong ML background.", result.Summary)
}
