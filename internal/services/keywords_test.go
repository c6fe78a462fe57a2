package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeywordService(endpoint string) *keywordService {
	return &keywordService{
		httpClient: &http.Client{Timeout: time.Second},
		endpoint:   endpoint,
		apiKey:     "test-key",
		enabled:    true,
	}
}

func TestExtractKeywords_CleansModelOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		fmt.Fprint(w, `[
			{"entity": "B-ORG", "word": "Google", "score": 0.99},
			{"entity": "I-ORG", "word": "##Cloud", "score": 0.98},
			{"entity": "B-MISC", "word": "Kubernetes", "score": 0.97},
			{"entity": "B-MISC", "word": "Kubernetes", "score": 0.95},
			{"entity": "B-LOC", "word": "NY", "score": 0.93},
			{"entity": "B-MISC", "word": " ##Go ", "score": 0.91}
		]`)
	}))
	defer srv.Close()

	svc := newTestKeywordService(srv.URL)
	keywords := svc.ExtractKeywords(context.Background(), "worked at Google on Kubernetes")

	// Continuation labels and duplicates dropped, markers stripped,
	// short tokens removed, emission order preserved.
	assert.Equal(t, []string{"Google", "Kubernetes"}, keywords)
}

func TestExtractKeywords_CapsAtTwenty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[")
		for i := 0; i < 30; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"entity": "B-MISC", "word": "Keyword%02d", "score": 0.9}`, i)
		}
		fmt.Fprint(w, "]")
	}))
	defer srv.Close()

	svc := newTestKeywordService(srv.URL)
	keywords := svc.ExtractKeywords(context.Background(), "long resume")

	require.Len(t, keywords, maxKeywords)
	assert.Equal(t, "Keyword00", keywords[0])
	assert.Equal(t, "Keyword19", keywords[len(keywords)-1])
}

func TestExtractKeywords_NestedResponseShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[[{"entity": "B-PER", "word": "Turing", "score": 0.99}]]`)
	}))
	defer srv.Close()

	svc := newTestKeywordService(srv.URL)
	assert.Equal(t, []string{"Turing"}, svc.ExtractKeywords(context.Background(), "Alan Turing"))
}

func TestExtractKeywords_ModelErrorReturnsEmptySet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model is loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := newTestKeywordService(srv.URL)
	assert.Empty(t, svc.ExtractKeywords(context.Background(), "some text"))
}

func TestExtractKeywords_MalformedResponseReturnsEmptySet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": "unexpected shape"}`)
	}))
	defer srv.Close()

	svc := newTestKeywordService(srv.URL)
	assert.Empty(t, svc.ExtractKeywords(context.Background(), "some text"))
}

func TestExtractKeywords_DisabledService(t *testing.T) {
	svc := NewKeywordService("", "dslim/bert-base-NER", time.Second)

	assert.False(t, svc.Enabled())
	assert.Empty(t, svc.ExtractKeywords(context.Background(), "some text"))
}

func TestCleanKeywords_NeverContainsShortOrDuplicateTokens(t *testing.T) {
	entities := []nerEntity{
		{Entity: "B-ORG", Word: "##a"},
		{Entity: "B-ORG", Word: "Go"},
		{Entity: "B-ORG", Word: "AWS"},
		{Entity: "B-ORG", Word: "AWS"},
		{Entity: "O", Word: "ignored"},
	}

	keywords := cleanKeywords(entities)
	assert.Equal(t, []string{"AWS"}, keywords)
}
