package services

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"career-navigator/internal/models"
)

// Documented fallback values for recoverable pipeline stages. A stage
// failure is absorbed into its fallback; only text extraction aborts the
// pipeline.
const (
	fallbackRole    = "General Professional"
	fallbackATS     = "Unable to generate ATS feedback at this time."
	fallbackSummary = "Unable to generate resume summary at this time."
)

// AnalyzerService runs the full resume analysis pipeline: text extraction,
// role identification, ATS feedback, summary, and keyword extraction.
type AnalyzerService interface {
	Analyze(ctx context.Context, doc models.ResumeDocument) models.AnalysisResult
}

type analyzerService struct {
	parser   DocumentParserService
	executor TaskExecutor
	keywords KeywordService
}

func NewAnalyzerService(
	parser DocumentParserService,
	executor TaskExecutor,
	keywords KeywordService,
) AnalyzerService {
	return &analyzerService{
		parser:   parser,
		executor: executor,
		keywords: keywords,
	}
}

// Analyze implements AnalyzerService. The returned result is either fully
// populated with Success=true, or carries only the extraction error with
// Success=false; it is never partial.
func (s *analyzerService) Analyze(ctx context.Context, doc models.ResumeDocument) models.AnalysisResult {
	text, err := s.parser.ExtractText(doc)
	if err != nil {
		log.Printf("❌ Failed to analyze resume: %v\n", err)
		return models.AnalysisResult{
			Success: false,
			Error:   err.Error(),
		}
	}

	// Role, ATS feedback, and summary have no data dependency among them;
	// they share only the immutable extracted text.
	var role, atsFeedback, summary string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		role = s.runWithFallback(gctx, TaskRole, map[string]string{"resume": text}, fallbackRole)
		return nil
	})
	g.Go(func() error {
		atsFeedback = s.runWithFallback(gctx, TaskATS, map[string]string{"resume": text}, fallbackATS)
		return nil
	})
	g.Go(func() error {
		summary = s.runWithFallback(gctx, TaskSummarize, map[string]string{"resume": text}, fallbackSummary)
		return nil
	})
	g.Wait()

	keywords := s.keywords.ExtractKeywords(ctx, text)

	return models.AnalysisResult{
		ResumeText:  text,
		Role:        role,
		ATSFeedback: atsFeedback,
		Summary:     summary,
		Keywords:    keywords,
		Success:     true,
	}
}

func (s *analyzerService) runWithFallback(ctx context.Context, task TaskID, vars map[string]string, fallback string) string {
	out, err := s.executor.Run(ctx, task, vars)
	if err != nil {
		log.Printf("⚠️  Task %s failed, using fallback: %v\n", task, err)
		return fallback
	}
	return out
}
