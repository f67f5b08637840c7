package metadata

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mssola/useragent"

	"gatecheck/pkg/requestcontext"
)

// RequestMetadata assigns a request ID and extracts client IP, User-Agent,
// and a terminal descriptor from the request, adding them to the context for
// handlers, services, and audit attribution.
// This middleware should be applied early in the chain.
func RequestMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := r.Context()
		ctx = requestcontext.WithRequestID(ctx, requestID)
		ctx = requestcontext.WithClientMetadata(ctx, ClientIPFromRequest(r), r.Header.Get("User-Agent"))
		ctx = requestcontext.WithTerminal(ctx, TerminalFromRequest(r))

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TerminalFromRequest derives a human-readable terminal descriptor for audit
// entries. Check-in stations may self-identify with X-Terminal-ID; otherwise
// the User-Agent is parsed into a browser/OS summary.
func TerminalFromRequest(r *http.Request) string {
	if terminal := strings.TrimSpace(r.Header.Get("X-Terminal-ID")); terminal != "" {
		return terminal
	}

	ua := useragent.New(r.Header.Get("User-Agent"))
	name, version := ua.Browser()
	if name == "" {
		return "unknown"
	}
	descriptor := name
	if version != "" {
		// Major version is enough to identify the station software.
		if idx := strings.Index(version, "."); idx != -1 {
			version = version[:idx]
		}
		descriptor += " " + version
	}
	if os := ua.OS(); os != "" {
		descriptor += " on " + os
	}
	return descriptor
}

// ClientIPFromRequest extracts the real client IP from the request, handling proxies and load balancers.
func ClientIPFromRequest(r *http.Request) string {
	// Check X-Forwarded-For header first (standard for proxied requests)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// X-Forwarded-For can contain multiple IPs (client, proxy1, proxy2, ...)
		// Take the first IP which is the original client
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	// Check X-Real-IP header (used by nginx and other proxies)
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to RemoteAddr (direct connection)
	// RemoteAddr is in format "ip:port", so we need to strip the port
	if addr := r.RemoteAddr; addr != "" {
		// For IPv6, format is [::1]:port
		// For IPv4, format is 127.0.0.1:port
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return addr[:idx]
		}
		return addr
	}

	return "unknown"
}
