package herald

import (
	"strings"
)

// CORSOptions configures one CORS call on the builder. The zero value means
// "use the documented defaults" for every field.
type CORSOptions struct {
	Origin      string   // default "*"
	Methods     []string // default GET, POST, PUT, DELETE, OPTIONS
	Headers     []string // default Content-Type, Authorization
	MaxAge      int      // seconds, default 86400
	Credentials *bool    // nil derives from Origin: specific origin => true, wildcard => false
}

var (
	defaultCORSMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	defaultCORSHeaders = []string{"Content-Type", "Authorization"}
)

const defaultCORSMaxAge = 86400

// OriginPolicy controls how ResolveOrigin matches a request origin against an
// allow-list. The localhost flags default to the development switch but can
// be toggled independently.
type OriginPolicy struct {
	Development       bool
	AllowAnyLocalhost bool
	AllowAnyPort      bool
}

// DevelopmentPolicy returns the permissive policy used for local work:
// origins are echoed back and localhost aliases match regardless of port.
func DevelopmentPolicy() OriginPolicy {
	return OriginPolicy{Development: true, AllowAnyLocalhost: true, AllowAnyPort: true}
}

// ProductionPolicy returns the strict policy: only the allow-list matters.
func ProductionPolicy() OriginPolicy {
	return OriginPolicy{}
}

// ResolveOrigin picks the Access-Control-Allow-Origin value to emit for a
// request. requestOrigin is the request's Origin header ("" when absent).
//
// The mismatch case deliberately falls back to the first allowed origin
// instead of refusing: a cross-origin caller that is not on the list still
// receives some allowed origin. Callers that need strict rejection must
// check the request origin themselves.
func ResolveOrigin(requestOrigin string, allowedOrigins []string, policy OriginPolicy) string {
	// Development convenience: anything goes.
	if policy.Development && requestOrigin != "" {
		return requestOrigin
	}

	// No allow-list means a same-origin full-stack deployment.
	if len(allowedOrigins) == 0 {
		if requestOrigin != "" {
			return requestOrigin
		}
		return "*"
	}

	// Same-origin requests carry no Origin header.
	if requestOrigin == "" {
		return allowedOrigins[0]
	}

	for _, allowed := range allowedOrigins {
		if requestOrigin == allowed {
			return requestOrigin
		}
	}

	if policy.AllowAnyLocalhost || policy.AllowAnyPort {
		reqHost := originHost(requestOrigin)
		for _, allowed := range allowedOrigins {
			if hostsMatch(reqHost, originHost(allowed), policy) {
				return requestOrigin
			}
		}
	}

	return allowedOrigins[0]
}

// localhostAliases are treated as mutually interchangeable when
// AllowAnyLocalhost is set.
var localhostAliases = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
	"0.0.0.0":   true,
}

func hostsMatch(reqHost, allowedHost string, policy OriginPolicy) bool {
	if policy.AllowAnyLocalhost && localhostAliases[reqHost] && localhostAliases[allowedHost] {
		return true
	}
	if policy.AllowAnyPort && reqHost == allowedHost {
		return true
	}
	return false
}

// originHost extracts the hostname from an origin value, dropping the scheme
// and port.
func originHost(origin string) string {
	host := origin
	if idx := strings.Index(host, "://"); idx >= 0 {
		host = host[idx+3:]
	}
	if idx := strings.LastIndex(host, ":"); idx >= 0 {
		host = host[:idx]
	}
	return host
}
