package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/estatehub/buyer-intake/ratelimit"
)

// RateLimit rejects requests beyond the rule's window with 429. Counters
// are keyed by scope plus client address so separate endpoints do not share
// budgets. X-RateLimit headers are set on every response.
func RateLimit(limiter *ratelimit.Limiter, scope string, rule ratelimit.Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := scope + ":" + ClientIP(r)
			result := limiter.Allow(key, rule)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rule.MaxRequests))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.UnixMilli(), 10))

			if !result.Allowed {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "Too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP extracts the client address, checking proxy headers first.
func ClientIP(r *http.Request) string {
	// X-Forwarded-For may carry a chain; the first entry is the client.
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
