package httpx

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// CORSPolicy defines the CORS headers to emit for matching origins.
type CORSPolicy struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// WithCORS adds basic CORS handling. If AllowedOrigins is empty, it is a no-op.
func WithCORS(cfg CORSPolicy) Middleware {
	origins := newOriginSet(cfg.AllowedOrigins)
	if origins.empty() {
		return func(next http.Handler) http.Handler { return next }
	}

	methods := strings.Join(trimList(cfg.AllowedMethods), ", ")
	headerNames := strings.Join(trimList(cfg.AllowedHeaders), ", ")
	maxAge := ""
	if secs := int(cfg.MaxAge.Seconds()); secs > 0 {
		maxAge = strconv.Itoa(secs)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || !origins.contains(origin) {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			if origins.wildcard && !cfg.AllowCredentials {
				h.Set("Access-Control-Allow-Origin", "*")
			} else {
				h.Set("Access-Control-Allow-Origin", origin)
			}
			if cfg.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
			if methods != "" {
				h.Set("Access-Control-Allow-Methods", methods)
			}
			if headerNames != "" {
				h.Set("Access-Control-Allow-Headers", headerNames)
			}
			if maxAge != "" {
				h.Set("Access-Control-Max-Age", maxAge)
			}
			h.Add("Vary", "Origin")
			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")

			// Preflight requests terminate here.
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type originSet struct {
	wildcard bool
	exact    map[string]struct{}
}

func newOriginSet(origins []string) originSet {
	set := originSet{exact: map[string]struct{}{}}
	for _, o := range trimList(origins) {
		if o == "*" {
			set.wildcard = true
			continue
		}
		set.exact[strings.ToLower(o)] = struct{}{}
	}
	return set
}

func (s originSet) empty() bool {
	return !s.wildcard && len(s.exact) == 0
}

func (s originSet) contains(origin string) bool {
	if s.wildcard {
		return true
	}
	_, ok := s.exact[strings.ToLower(origin)]
	return ok
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
