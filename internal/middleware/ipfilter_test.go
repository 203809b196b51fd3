// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xilkadim/brandkit/internal/config"
)

// setBehindProxy initializes a throwaway config with server.behind_proxy set
func setBehindProxy(t *testing.T, behind bool) {
	t.Helper()
	if err := config.InitConfig(filepath.Join(t.TempDir(), "config.yaml")); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if err := config.Set("server.behind_proxy", behind); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
}

func runIPFilter(blocklist []string, remoteAddr, forwarded string) int {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/palettes", nil)
	c.Request.RemoteAddr = remoteAddr
	if forwarded != "" {
		c.Request.Header.Set("X-Forwarded-For", forwarded)
	}

	IPFilterMiddleware(blocklist)(c)
	return w.Code
}

func TestIPFilterBlocklist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if code := runIPFilter([]string{"192.168.1.0/24"}, "192.168.1.100:1234", ""); code != 403 {
		t.Errorf("Expected 403 for blocked IP, got %d", code)
	}
}

func TestIPFilterBlocklistAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if code := runIPFilter([]string{"192.168.1.0/24"}, "10.0.0.1:1234", ""); code == 403 {
		t.Error("Expected request from unlisted IP to be allowed")
	}
}

func TestIPFilterSingleAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if code := runIPFilter([]string{"10.0.0.7"}, "10.0.0.7:80", ""); code != 403 {
		t.Errorf("Expected 403 for blocked address, got %d", code)
	}
	if code := runIPFilter([]string{"10.0.0.7"}, "10.0.0.8:80", ""); code == 403 {
		t.Error("Neighbouring address should not be blocked")
	}
	if code := runIPFilter([]string{"2001:db8::1"}, "[2001:db8::1]:443", ""); code != 403 {
		t.Errorf("Expected 403 for blocked IPv6 address, got %d", code)
	}
}

func TestIPFilterForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setBehindProxy(t, true)

	code := runIPFilter([]string{"203.0.113.0/24"}, "10.0.0.1:1234", "203.0.113.9, 10.0.0.1")
	if code != 403 {
		t.Errorf("Expected 403 for blocked forwarded IP, got %d", code)
	}
}

func TestIPFilterIgnoresForwardedForWithoutProxy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setBehindProxy(t, false)

	// a blocked peer cannot escape by claiming another address
	code := runIPFilter([]string{"203.0.113.7"}, "203.0.113.7:5555", "198.51.100.1")
	if code != 403 {
		t.Errorf("Expected 403 for blocked peer with forged X-Forwarded-For, got %d", code)
	}

	// and an allowed peer cannot get blocked by naming a listed address
	code = runIPFilter([]string{"203.0.113.0/24"}, "10.0.0.1:1234", "203.0.113.9")
	if code == 403 {
		t.Error("X-Forwarded-For must be ignored when not behind a proxy")
	}
}

func TestIPFilterEmptyBlocklist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if code := runIPFilter(nil, "not-an-ip", ""); code == 403 {
		t.Error("Empty blocklist should allow every request")
	}
	if code := runIPFilter([]string{"garbage", "10.0.0.0/8"}, "not-an-ip", ""); code != 403 {
		t.Errorf("Unparseable client IP should be rejected when filtering, got %d", code)
	}
}
