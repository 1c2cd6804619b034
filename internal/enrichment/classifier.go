package enrichment

import (
	"context"
	"fmt"
	"time"

	"github.com/trustrails/adviser-shield/pkg/httpclient"
)

// Candidate labels for zero-shot classification
var candidateLabels = []string{"legitimate", "fraudulent", "misleading"}

const defaultBaseURL = "https://api-inference.huggingface.co"

// Classification is the zero-shot classifier output for a piece of text.
// It is advisory only; risk scoring never reads it.
type Classification struct {
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
	TopLabel string    `json:"top_label"`
	TopScore float64   `json:"top_score"`
}

// ScoreByLabel returns the score for a label, or 0 when absent
func (c *Classification) ScoreByLabel(label string) float64 {
	for i, l := range c.Labels {
		if l == label && i < len(c.Scores) {
			return c.Scores[i]
		}
	}
	return 0
}

// Classifier labels text with fraud-likelihood categories
type Classifier interface {
	Classify(ctx context.Context, text string) (*Classification, error)
}

// HFClassifier calls the HuggingFace zero-shot inference API
type HFClassifier struct {
	client *httpclient.Client
	model  string
}

// NewHFClassifier creates a classifier for the given model. baseURL is
// overridable for tests; empty selects the public inference endpoint.
func NewHFClassifier(token, model, baseURL string, timeout time.Duration) *HFClassifier {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &HFClassifier{
		client: httpclient.NewClient(baseURL,
			httpclient.WithTimeout(timeout),
			httpclient.WithHeader("Authorization", "Bearer "+token),
		),
		model: model,
	}
}

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Classify labels text as legitimate, fraudulent or misleading
func (h *HFClassifier) Classify(ctx context.Context, text string) (*Classification, error) {
	req := zeroShotRequest{
		Inputs:     text,
		Parameters: zeroShotParameters{CandidateLabels: candidateLabels},
	}

	var resp zeroShotResponse
	if err := h.client.PostJSON(ctx, "/models/"+h.model, req, &resp); err != nil {
		return nil, fmt.Errorf("zero-shot inference: %w", err)
	}
	if len(resp.Labels) == 0 || len(resp.Labels) != len(resp.Scores) {
		return nil, fmt.Errorf("zero-shot inference: malformed response")
	}

	// The API usually returns labels sorted by score, but that ordering is
	// not part of the contract
	top := 0
	for i, score := range resp.Scores {
		if score > resp.Scores[top] {
			top = i
		}
	}

	return &Classification{
		Labels:   resp.Labels,
		Scores:   resp.Scores,
		TopLabel: resp.Labels[top],
		TopScore: resp.Scores[top],
	}, nil
}
