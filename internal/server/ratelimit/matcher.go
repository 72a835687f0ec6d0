package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the limit configuration for a request. An exact
// path match wins over a prefix rule (a configured path ending in "/"
// matches every path below it). The health check is never limited. Returns
// nil when no rule applies.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	var prefix *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if prefix == nil && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			prefix = c
		}
	}
	return prefix
}
