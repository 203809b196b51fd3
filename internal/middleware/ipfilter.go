// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xilkadim/brandkit/internal/config"
)

// IPFilterMiddleware blocks requests whose client IP falls in any blocklisted CIDR.
// Entries that are not valid CIDRs are treated as single addresses or ignored.
func IPFilterMiddleware(blocklist []string) gin.HandlerFunc {
	blockedCIDRs := make([]*net.IPNet, 0, len(blocklist))
	for _, entry := range blocklist {
		entry = strings.TrimSpace(entry)
		if ip := net.ParseIP(entry); ip != nil {
			bits := 8 * net.IPv6len
			if v4 := ip.To4(); v4 != nil {
				ip, bits = v4, 8*net.IPv4len
			}
			blockedCIDRs = append(blockedCIDRs, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err == nil {
			blockedCIDRs = append(blockedCIDRs, ipNet)
		}
	}

	return func(c *gin.Context) {
		if len(blockedCIDRs) == 0 {
			c.Next()
			return
		}

		ip := net.ParseIP(clientIP(c))
		if ip == nil {
			c.AbortWithStatus(403)
			return
		}

		for _, ipNet := range blockedCIDRs {
			if ipNet.Contains(ip) {
				c.AbortWithStatus(403)
				return
			}
		}

		c.Next()
	}
}

// clientIP extracts the client IP. The first X-Forwarded-For entry is only
// honored when server.behind_proxy is set.
func clientIP(c *gin.Context) string {
	if !config.GetBool("server.behind_proxy") {
		return remoteHost(c)
	}
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	return remoteHost(c)
}

// remoteHost is the peer address of the connection without its port
func remoteHost(c *gin.Context) string {
	// Use SplitHostPort to properly handle IPv6 addresses with brackets
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
