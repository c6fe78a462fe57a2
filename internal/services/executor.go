package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"career-navigator/internal/models"
)

// taskTemperature favors reproducible, consistent output over creative
// variation; the completions feed structured downstream display.
const taskTemperature = 0.3

// TaskExecutor renders one of the fixed prompt templates and obtains a
// text completion for it. Every derived artifact (role, ATS feedback,
// summary, interview question, answer evaluation) is produced through
// this single mechanism.
type TaskExecutor interface {
	Run(ctx context.Context, task TaskID, vars map[string]string) (string, error)
}

type taskExecutor struct {
	generator GeminiService
	timeout   time.Duration
}

func NewTaskExecutor(generator GeminiService, timeout time.Duration) TaskExecutor {
	return &taskExecutor{
		generator: generator,
		timeout:   timeout,
	}
}

// Run implements TaskExecutor. The completion is returned trimmed and
// otherwise verbatim; no semantic parsing of the model's output format is
// performed. Model-service failures are reported as ErrCompletionFailed.
func (e *taskExecutor) Run(ctx context.Context, task TaskID, vars map[string]string) (string, error) {
	prompt, err := RenderPrompt(task, vars)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	text, err := e.generator.GenerateText(ctx, prompt, taskTemperature)
	if err != nil {
		return "", fmt.Errorf("%w: task %s: %v", models.ErrCompletionFailed, task, err)
	}

	return strings.TrimSpace(text), nil
}
