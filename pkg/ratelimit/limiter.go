package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trustrails/adviser-shield/pkg/config"
)

// IdentityType distinguishes who a request is attributed to
type IdentityType int

const (
	IdentityAnonymous IdentityType = iota
	IdentityAuthenticated
)

// Rule is the effective rate limit applied to one request
type Rule struct {
	Limit  int
	Burst  int
	Window time.Duration
}

// Result describes the outcome of a rate limit check
type Result struct {
	Allowed      bool
	Remaining    int
	RetryAfter   time.Duration
	Limit        int
	Window       time.Duration
	ResetAfter   time.Duration
	IdentityKey  string
	EndpointKey  string
	IdentityType IdentityType
}

// tokenBucketScript refills a per-identity bucket and takes one token
// atomically. State lives in a Redis hash keyed prefix:endpoint:identity.
const tokenBucketScript = `
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local requested = tonumber(ARGV[4])

local bucket = redis.call("HMGET", key, "tokens", "ts")
local tokens = tonumber(bucket[1])
local ts = tonumber(bucket[2])
if tokens == nil then
  tokens = capacity
  ts = now
end

local elapsed = now - ts
if elapsed < 0 then
  elapsed = 0
end
tokens = math.min(capacity, tokens + elapsed * rate)

local allowed = 0
local retry_after = 0
if tokens >= requested then
  tokens = tokens - requested
  allowed = 1
else
  retry_after = (requested - tokens) / rate
end

redis.call("HMSET", key, "tokens", tostring(tokens), "ts", tostring(now))
redis.call("EXPIRE", key, math.ceil(capacity / rate) * 2)

local reset_after = (capacity - tokens) / rate
return {allowed, tostring(tokens), tostring(retry_after), tostring(reset_after)}
`

// Limiter enforces token-bucket rate limits backed by Redis. Checks fail
// open: if Redis is unreachable the request is allowed.
type Limiter struct {
	client *redis.Client
	cfg    config.RateLimitConfig
	script *redis.Script
	now    func() time.Time
}

// NewLimiter creates a limiter over the given Redis client
func NewLimiter(client *redis.Client, cfg config.RateLimitConfig) *Limiter {
	return &Limiter{
		client: client,
		cfg:    cfg,
		script: redis.NewScript(tokenBucketScript),
		now:    time.Now,
	}
}

// WithNow overrides the clock, for tests
func (l *Limiter) WithNow(now func() time.Time) {
	l.now = now
}

// RuleFor resolves the effective rule for an endpoint and identity class.
// Endpoint overrides replace the defaults; within an override a zero limit
// falls back but a zero burst is honored.
func (l *Limiter) RuleFor(endpoint string, identity IdentityType) Rule {
	limit, burst := l.cfg.DefaultLimit, l.cfg.DefaultBurst
	if identity == IdentityAnonymous {
		limit, burst = l.cfg.AnonymousLimit, l.cfg.AnonymousBurst
	}
	window := l.cfg.Window()

	if override, ok := l.cfg.EndpointOverrides[endpoint]; ok {
		if identity == IdentityAuthenticated {
			if override.AuthenticatedLimit > 0 {
				limit = override.AuthenticatedLimit
			}
			burst = override.AuthenticatedBurst
		} else {
			if override.AnonymousLimit > 0 {
				limit = override.AnonymousLimit
			}
			burst = override.AnonymousBurst
		}
		if override.WindowSeconds > 0 {
			window = time.Duration(override.WindowSeconds) * time.Second
		}
	}

	if burst < 0 {
		burst = 0
	}

	return Rule{Limit: limit, Burst: burst, Window: window}
}

// Allow checks whether one request under the given rule may proceed
func (l *Limiter) Allow(ctx context.Context, endpoint, identity string, rule Rule, identityType IdentityType) (*Result, error) {
	if !l.cfg.Enabled || rule.Limit <= 0 {
		remaining := rule.Limit
		if remaining < 0 {
			remaining = 0
		}
		return &Result{
			Allowed:      true,
			Remaining:    remaining,
			Limit:        rule.Limit,
			Window:       rule.Window,
			IdentityKey:  identity,
			EndpointKey:  endpoint,
			IdentityType: identityType,
		}, nil
	}

	window := rule.Window
	if window <= 0 {
		window = l.cfg.Window()
	}

	rate := float64(rule.Limit) / window.Seconds()
	capacity := rule.Limit + rule.Burst
	nowSeconds := float64(l.now().UnixNano()) / float64(time.Second)

	key := fmt.Sprintf("%s:%s:%s", l.cfg.RedisPrefix, endpoint, identity)

	raw, err := l.script.Run(ctx, l.client, []string{key},
		formatFloat(rate),
		strconv.Itoa(capacity),
		formatFloat(nowSeconds),
		"1",
	).Result()
	if err != nil {
		return nil, fmt.Errorf("rate limit check: %w", err)
	}

	values, ok := raw.([]interface{})
	if !ok || len(values) < 4 {
		return nil, fmt.Errorf("rate limit check: unexpected script result %T", raw)
	}

	allowed := toInt(values[0]) == 1
	remaining := toInt(values[1])
	retryAfter := time.Duration(toFloat(values[2]) * float64(time.Second))
	resetAfter := time.Duration(toFloat(values[3]) * float64(time.Second))

	return &Result{
		Allowed:      allowed,
		Remaining:    remaining,
		RetryAfter:   retryAfter,
		Limit:        rule.Limit,
		Window:       window,
		ResetAfter:   resetAfter,
		IdentityKey:  identity,
		EndpointKey:  endpoint,
		IdentityType: identityType,
	}, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 10, 64)
}

func toInt(v interface{}) int {
	switch t := v.(type) {
	case int64:
		return int(t)
	case int:
		return t
	case float64:
		return int(t)
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			f, ferr := strconv.ParseFloat(t, 64)
			if ferr != nil {
				return 0
			}
			return int(f)
		}
		return n
	default:
		return 0
	}
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int64:
		return float64(t)
	case int:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
