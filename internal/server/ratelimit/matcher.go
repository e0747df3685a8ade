// Package ratelimit - matcher.go maps request paths to endpoint limit tiers.
package ratelimit

import (
	"net/http"
	"strings"
)

// exempt reports whether a request is never limited: health probes and CORS preflights.
func exempt(path, method string) bool {
	return method == http.MethodOptions || (path == "/health" && method == http.MethodGet)
}

// MatchEndpoint returns the config for path and method, or nil when none applies.
// Exact matches win over prefix matches; among prefixes the longest wins.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	var best *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			if best == nil || len(cfg.Path) > len(best.Path) {
				best = cfg
			}
		}
	}
	return best
}
