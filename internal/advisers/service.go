package advisers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trustrails/adviser-shield/internal/analysis"
	"github.com/trustrails/adviser-shield/pkg/logger"
)

// Service handles adviser intake and listing. Every submitted bio runs
// through the risk engine before the record is stored, so listings always
// carry a verdict.
type Service struct {
	repo     Repository
	analyzer Analyzer
	bioMax   int
}

// NewService creates a new adviser service
func NewService(repo Repository, analyzer Analyzer, bioMax int) *Service {
	return &Service{
		repo:     repo,
		analyzer: analyzer,
		bioMax:   bioMax,
	}
}

// Create analyzes the bio and stores the adviser with its verdict
func (s *Service) Create(ctx context.Context, req *CreateAdviserRequest) (*AdviserResponse, error) {
	result, err := s.analyzer.Analyze(ctx, analysis.Input{
		Text:               req.Bio,
		ClaimedID:          req.RegNo,
		MaxChars:           s.bioMax,
		RequireContactInfo: true,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	adviser := &Adviser{
		ID:        uuid.New(),
		Name:      req.Name,
		RegNo:     req.RegNo,
		Bio:       req.Bio,
		RiskScore: result.RiskScore,
		Verdict:   result.Verdict,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, adviser); err != nil {
		return nil, fmt.Errorf("store adviser: %w", err)
	}

	logger.WithContext(ctx).Info("adviser registered",
		zap.String("adviser_id", adviser.ID.String()),
		zap.String("verdict", string(adviser.Verdict)),
		zap.Int("risk_score", adviser.RiskScore),
	)

	return &AdviserResponse{Adviser: adviser, Analysis: result}, nil
}

// GetByID returns a stored adviser
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Adviser, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of advisers, newest first, with the total count
func (s *Service) List(ctx context.Context, limit, offset int) ([]*Adviser, int64, error) {
	return s.repo.List(ctx, limit, offset)
}
