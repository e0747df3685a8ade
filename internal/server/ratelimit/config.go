package ratelimit

import (
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/config"
)

// EndpointConfig allows Limit requests per Window on one route. A Path ending
// in "/" matches every path below it. Burst is the bucket capacity and
// defaults to Limit.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	// IdleTimeout is how long an unused bucket survives cleanup.
	IdleTimeout     time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewConfig converts loaded settings into a limiter configuration with the
// default endpoint tiers.
func NewConfig(settings config.RateLimitConfig) *Config {
	return &Config{
		Enabled:         settings.Enabled,
		DefaultLimit:    settings.DefaultLimit,
		DefaultWindow:   settings.DefaultWindow,
		CleanupInterval: settings.CleanupInterval,
		IdleTimeout:     time.Hour,
		Whitelist:       ipSet(settings.Whitelist),
		Blacklist:       ipSet(settings.Blacklist),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-route tiers. Routes not listed fall
// back to the default limit.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Outbound fetches and headless rendering
		{Path: "/api/analyze/url", Method: http.MethodPost, Limit: 20, Window: time.Hour, Burst: 5},

		// Uploads need parsing of untrusted documents
		{Path: "/api/analyze/upload", Method: http.MethodPost, Limit: 60, Window: time.Hour, Burst: 10},

		// Pure computation
		{Path: "/api/analyze", Method: http.MethodPost, Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/api/analyze/text", Method: http.MethodPost, Limit: 120, Window: time.Minute, Burst: 20},

		{Path: "/api/session", Method: http.MethodPost, Limit: 30, Window: time.Hour, Burst: 5},

		// Draft writes
		{Path: "/api/drafts", Method: http.MethodPost, Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/drafts/", Method: http.MethodPut, Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/drafts/", Method: http.MethodDelete, Limit: 100, Window: time.Minute, Burst: 10},
	}
}

// ipSet builds a lookup set from addresses, skipping blanks.
func ipSet(addrs []string) map[string]bool {
	set := make(map[string]bool, len(addrs))
	for _, addr := range addrs {
		if addr = strings.TrimSpace(addr); addr != "" {
			set[addr] = true
		}
	}
	return set
}
