package http

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// securityMetrics counts security events for the lifetime of the process.
type securityMetrics struct {
	rateLimitHits      int64
	suspiciousRequests int64
}

// rateLimiter is a per-IP fixed-window limiter for mutating requests.
type rateLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientWindow
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

type clientWindow struct {
	lastRequest time.Time
	requests    int
}

const (
	rateLimitPerMinute = 60
	staleClientAfter   = 10 * time.Minute
)

func newRateLimiter() *rateLimiter {
	rl := &rateLimiter{
		clients:     make(map[string]*clientWindow),
		stopCleanup: make(chan struct{}),
	}
	go rl.runCleanup()
	return rl
}

func (rl *rateLimiter) runCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.dropStale()
		case <-rl.stopCleanup:
			return
		}
	}
}

func (rl *rateLimiter) dropStale() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-staleClientAfter)
	for ip, c := range rl.clients {
		if c.lastRequest.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *rateLimiter) stop() {
	rl.shutdownOnce.Do(func() {
		close(rl.stopCleanup)
	})
}

// allow reports whether a request from clientIP fits in the current window.
func (rl *rateLimiter) allow(clientIP string, metrics *securityMetrics) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	c, ok := rl.clients[clientIP]
	if !ok {
		rl.clients[clientIP] = &clientWindow{lastRequest: now, requests: 1}
		return true
	}

	if now.Sub(c.lastRequest) > time.Minute {
		c.requests = 1
		c.lastRequest = now
		return true
	}

	c.requests++
	c.lastRequest = now
	if c.requests > rateLimitPerMinute {
		if metrics != nil {
			atomic.AddInt64(&metrics.rateLimitHits, 1)
		}
		return false
	}
	return true
}

// trustedProxies are the networks allowed to set forwarding headers.
var trustedProxies = []*net.IPNet{
	mustCIDR("127.0.0.0/8"),
	mustCIDR("10.0.0.0/8"),
	mustCIDR("172.16.0.0/12"),
	mustCIDR("192.168.0.0/16"),
}

func mustCIDR(cidr string) *net.IPNet {
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		panic(fmt.Sprintf("bad trusted proxy CIDR %s: %v", cidr, err))
	}
	return network
}

func isTrustedProxy(ip net.IP) bool {
	for _, network := range trustedProxies {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// extractClientIP resolves the client address, honoring forwarding headers
// only when the direct peer is a trusted proxy.
func extractClientIP(r *http.Request) string {
	directIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		directIP = r.RemoteAddr
	}

	parsed := net.ParseIP(directIP)
	if parsed == nil {
		return directIP
	}

	if isTrustedProxy(parsed) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first := strings.TrimSpace(strings.Split(xff, ",")[0])
			if net.ParseIP(first) != nil {
				return first
			}
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			if net.ParseIP(xri) != nil {
				return xri
			}
		}
	}

	return directIP
}

var suspiciousPathPatterns = []string{
	"../", "..\\", ".env", "wp-admin", "phpmyadmin",
	".git", ".ssh", "etc/passwd", "cmd.exe",
	"<script", "javascript:", "union select",
}

var suspiciousAgents = []string{
	"sqlmap", "nikto", "gobuster", "dirb", "scanner",
}

// detectSuspiciousRequest flags obvious probing. Matches are only logged;
// legitimate requests must never be blocked by a heuristic.
func detectSuspiciousRequest(r *http.Request, metrics *securityMetrics) bool {
	suspicious := false

	target := strings.ToLower(r.URL.Path + "?" + r.URL.RawQuery)
	for _, pattern := range suspiciousPathPatterns {
		if strings.Contains(target, pattern) {
			suspicious = true
			break
		}
	}

	agent := strings.ToLower(r.Header.Get("User-Agent"))
	for _, pattern := range suspiciousAgents {
		if strings.Contains(agent, pattern) {
			suspicious = true
			break
		}
	}

	if len(r.URL.String()) > 2048 {
		suspicious = true
	}

	if suspicious && metrics != nil {
		atomic.AddInt64(&metrics.suspiciousRequests, 1)
	}
	return suspicious
}
