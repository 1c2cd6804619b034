package registry

import "context"

// Directory is the lookup source for registration records. Implementations
// return (nil, nil) when no record matches; a non-nil error means the
// lookup itself failed.
type Directory interface {
	// Find returns the record whose normalized identifier equals id
	Find(ctx context.Context, id string) (*Record, error)

	// FindBySuffix returns the first record whose numeric suffix matches
	FindBySuffix(ctx context.Context, suffix string) (*Record, error)

	// Search returns records whose name, identifier or entity type
	// contains the query, case-insensitively
	Search(ctx context.Context, query string) ([]Record, error)
}

// Verifier checks a claimed registration identifier, optionally extracting
// one from free text when no explicit identifier is supplied.
type Verifier interface {
	Verify(ctx context.Context, claimedID, freeText string) (*RegistrationCheck, error)
}
