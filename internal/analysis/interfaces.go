package analysis

import (
	"context"

	"github.com/trustrails/adviser-shield/internal/registry"
)

// RegistrationVerifier resolves claimed registration numbers. Satisfied by
// registry.Service and registry.RegistryVerifier.
type RegistrationVerifier interface {
	Verify(ctx context.Context, claimedID, freeText string) (*registry.RegistrationCheck, error)
}

// ServiceInterface defines the analysis operations exposed to handlers
type ServiceInterface interface {
	Analyze(ctx context.Context, input Input) (*Result, error)
}
