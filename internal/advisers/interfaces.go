package advisers

import (
	"context"

	"github.com/google/uuid"

	"github.com/trustrails/adviser-shield/internal/analysis"
)

// Repository persists adviser records
type Repository interface {
	Create(ctx context.Context, adviser *Adviser) error
	GetByID(ctx context.Context, id uuid.UUID) (*Adviser, error)
	List(ctx context.Context, limit, offset int) ([]*Adviser, int64, error)
}

// Analyzer runs the risk engine over an adviser's bio at intake
type Analyzer interface {
	Analyze(ctx context.Context, input analysis.Input) (*analysis.Result, error)
}
