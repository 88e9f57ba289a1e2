package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ctxRealIPKey is the gin context key holding the resolved client IP.
const ctxRealIPKey = "real_ip"

// RealIP resolves the originating client address once per request and
// stores it under "real_ip" for the rate limiter key funcs. Forwarded
// headers (CF-Connecting-IP, then the left-most X-Forwarded-For entry)
// are believed only when the direct peer is a loopback or private
// address, so a client on the open internet cannot spoof its way past
// an IP-keyed limit.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxRealIPKey, resolveClientIP(c))
		c.Next()
	}
}

func resolveClientIP(c *gin.Context) string {
	peer := net.ParseIP(c.RemoteIP())
	trustedPeer := peer != nil && (peer.IsLoopback() || peer.IsPrivate())
	if trustedPeer {
		if ip := parseForwardedIP(c.GetHeader("CF-Connecting-IP")); ip != "" {
			return ip
		}
		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := parseForwardedIP(first); ip != "" {
				return ip
			}
		}
	}
	if peer != nil {
		return peer.String()
	}
	return c.ClientIP()
}

func parseForwardedIP(v string) string {
	ip := net.ParseIP(strings.TrimSpace(v))
	if ip == nil {
		return ""
	}
	return ip.String()
}
