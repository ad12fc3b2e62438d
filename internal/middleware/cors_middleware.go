package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/connectik/connectik_api/internal/config"
)

const netlifySuffix = ".netlify.app"

// originHost returns the host part of origin or referer URL, or empty if invalid.
// Strips default ports (:443, :80) so "connectik1.netlify.app:443" matches "connectik1.netlify.app".
func originHost(raw string) string {
	raw = strings.TrimSpace(strings.TrimSuffix(raw, "/"))
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Host)
	if strings.HasSuffix(host, ":443") || strings.HasSuffix(host, ":80") {
		host, _, _ = strings.Cut(host, ":")
	}
	return host
}

// CORSMiddleware handles Cross-Origin Resource Sharing (CORS) headers. Only
// configured origins, plus Netlify deploy previews when enabled, are echoed
// back, since credentials are allowed.
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedHosts := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if host := originHost(o); host != "" {
			allowedHosts[host] = true
		}
	}

	allowed := func(host string) bool {
		if host == "" {
			return false
		}
		if allowedHosts[host] {
			return true
		}
		return cfg.AllowNetlifyPreviews && strings.HasSuffix(host, netlifySuffix)
	}

	return func(c *gin.Context) {
		origin := strings.TrimSpace(strings.TrimSuffix(c.Request.Header.Get("Origin"), "/"))

		if allowed(originHost(origin)) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With, X-Session-Id")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Header("Access-Control-Max-Age", "86400")

		// Handle preflight request
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
