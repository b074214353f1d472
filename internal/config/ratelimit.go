package config

import (
    "time"
)

// RateLimitConfig drives the token bucket in front of the auth endpoints.
// LocalRPS/LocalBurst size the in-process limiter used when Redis is not
// reachable.
type RateLimitConfig struct {
    Enabled        bool
    Capacity       int
    RefillTokens   int
    RefillInterval time.Duration
    TTL            time.Duration
    KeyStrategy    string
    Prefix         string
    Debug          bool
    LocalRPS       float64
    LocalBurst     int
}

func LoadRateLimitConfig() RateLimitConfig {
    def := RateLimitConfig{
        Enabled:        envBool("RATE_LIMIT_ENABLED", true),
        Capacity:       envInt("RATE_LIMIT_CAPACITY", 20),
        RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
        RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", 3*time.Second),
        TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
        KeyStrategy:    envStr("RATE_LIMIT_KEY_STRATEGY", "ip_route"),
        Prefix:         envStr("RATE_LIMIT_PREFIX", "rl"),
        Debug:          envBool("RATE_LIMIT_DEBUG", false),
        LocalBurst:     envInt("RATE_LIMIT_LOCAL_BURST", 10),
    }
    def.LocalRPS = float64(envInt("RATE_LIMIT_LOCAL_RPS", 5))
    return def.normalize()
}

// normalize clamps values so the limiter never divides by zero or expires
// buckets before they could refill.
func (c RateLimitConfig) normalize() RateLimitConfig {
    if c.Capacity < 1 { c.Capacity = 1 }
    if c.RefillTokens < 1 { c.RefillTokens = 1 }
    if c.RefillInterval <= 0 { c.RefillInterval = time.Second }
    if minTTL := 5 * c.RefillInterval; c.TTL < minTTL { c.TTL = minTTL }
    if c.LocalRPS <= 0 { c.LocalRPS = 1 }
    if c.LocalBurst < 1 { c.LocalBurst = 1 }
    return c
}
