package registry

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/trustrails/adviser-shield/pkg/logger"
)

const (
	verifyCachePrefix = "registry:verify:"
	verifyCacheTTL    = 15 * time.Minute
)

// Service wraps the verifier and directory behind a Redis cache. The cache
// only ever short-circuits repeat lookups; verdicts remain a pure function
// of directory contents and input.
type Service struct {
	verifier  Verifier
	directory Directory
	cache     *goredis.Client
}

// NewService creates a registry service. cache may be nil, in which case
// every verification hits the directory.
func NewService(verifier Verifier, directory Directory, cache *goredis.Client) *Service {
	return &Service{
		verifier:  verifier,
		directory: directory,
		cache:     cache,
	}
}

// Verify resolves a claimed registration number, consulting the cache for
// explicit identifiers. Free-text extraction results are not cached since
// the key would have to cover the whole text.
func (s *Service) Verify(ctx context.Context, claimedID, freeText string) (*RegistrationCheck, error) {
	key := ""
	if s.cache != nil && claimedID != "" {
		key = verifyCachePrefix + NormalizeRegNo(claimedID)
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var cached RegistrationCheck
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
			// Unreadable entry, fall through and overwrite
		}
	}

	check, err := s.verifier.Verify(ctx, claimedID, freeText)
	if err != nil {
		return nil, err
	}

	if key != "" {
		if raw, err := json.Marshal(check); err == nil {
			if err := s.cache.Set(ctx, key, raw, verifyCacheTTL).Err(); err != nil {
				logger.WithContext(ctx).Warn("failed to cache verification result",
					zap.String("key", key),
					zap.Error(err),
				)
			}
		}
	}

	return check, nil
}

// Search proxies directory search
func (s *Service) Search(ctx context.Context, query string) ([]Record, error) {
	return s.directory.Search(ctx, query)
}
