package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	// maxKeywords bounds the keyword set returned to callers.
	maxKeywords = 20

	hfInferenceBaseURL = "https://api-inference.huggingface.co/models/"
)

// KeywordService extracts a bounded set of named-entity keywords from
// resume text. Keyword extraction is an enhancement, not a critical path:
// this service never returns an error, only an empty set.
type KeywordService interface {
	ExtractKeywords(ctx context.Context, text string) []string
	Enabled() bool
}

type keywordService struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	enabled    bool
}

// NewKeywordService builds a keyword extractor backed by a hosted
// token-classification model. With an empty API key the service is
// constructed in disabled mode and every call returns an empty set.
func NewKeywordService(apiKey, model string, timeout time.Duration) KeywordService {
	enabled := apiKey != ""
	if !enabled {
		log.Println("⚠️  HF_API_KEY not set, keyword extraction disabled")
	}

	return &keywordService{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   hfInferenceBaseURL + model,
		apiKey:     apiKey,
		enabled:    enabled,
	}
}

// Enabled implements KeywordService.
func (s *keywordService) Enabled() bool {
	return s.enabled
}

// ExtractKeywords implements KeywordService.
func (s *keywordService) ExtractKeywords(ctx context.Context, text string) []string {
	if !s.enabled {
		return []string{}
	}

	entities, err := s.classifyTokens(ctx, text)
	if err != nil {
		log.Printf("⚠️  Failed to extract keywords: %v\n", err)
		return []string{}
	}

	return cleanKeywords(entities)
}

// nerEntity is one token of the model's raw (unaggregated) output. Entity
// carries IOB2 labels ("B-ORG", "I-ORG", ...); Word carries "##" sub-word
// continuation markers.
type nerEntity struct {
	Entity string  `json:"entity"`
	Word   string  `json:"word"`
	Score  float64 `json:"score"`
}

func (s *keywordService) classifyTokens(ctx context.Context, text string) ([]nerEntity, error) {
	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call NER model: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read NER response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NER model returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var entities []nerEntity
	if err := json.Unmarshal(raw, &entities); err == nil {
		return entities, nil
	}

	// Batched deployments nest results one level deeper.
	var nested [][]nerEntity
	if err := json.Unmarshal(raw, &nested); err != nil {
		return nil, fmt.Errorf("failed to parse NER response: %w", err)
	}

	var flat []nerEntity
	for _, batch := range nested {
		flat = append(flat, batch...)
	}
	return flat, nil
}

// cleanKeywords reduces raw model output to the keyword set: keep only
// span-beginning tokens so multi-token entities count once, deduplicate,
// strip sub-word markers and whitespace, drop short tokens, and cap the
// result at maxKeywords. Order follows the model's emission order.
func cleanKeywords(entities []nerEntity) []string {
	seen := make(map[string]bool)
	keywords := []string{}

	for _, ent := range entities {
		if !strings.HasPrefix(ent.Entity, "B-") {
			continue
		}
		if seen[ent.Word] {
			continue
		}
		seen[ent.Word] = true

		word := strings.TrimSpace(strings.ReplaceAll(ent.Word, "##", ""))
		if len(word) <= 2 {
			continue
		}

		keywords = append(keywords, word)
		if len(keywords) == maxKeywords {
			break
		}
	}

	return keywords
}
