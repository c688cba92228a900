package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestExtractClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{"direct", "203.0.113.7:51234", "", "", "203.0.113.7"},
		{"xff from trusted proxy", "10.0.0.5:80", "203.0.113.9, 10.0.0.5", "", "203.0.113.9"},
		{"xri from trusted proxy", "127.0.0.1:80", "", "203.0.113.11", "203.0.113.11"},
		{"xff from untrusted peer ignored", "203.0.113.7:80", "1.2.3.4", "", "203.0.113.7"},
		{"garbage xff falls back to peer", "192.168.1.2:80", "not-an-ip", "", "192.168.1.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := extractClientIP(r); got != tt.want {
				t.Errorf("extractClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimiterWindow(t *testing.T) {
	rl := &rateLimiter{clients: make(map[string]*clientWindow), stopCleanup: make(chan struct{})}
	defer rl.stop()

	var m securityMetrics
	for i := 0; i < rateLimitPerMinute; i++ {
		if !rl.allow("198.51.100.1", &m) {
			t.Fatalf("request %d unexpectedly limited", i+1)
		}
	}
	if rl.allow("198.51.100.1", &m) {
		t.Error("request over the limit was allowed")
	}
	if m.rateLimitHits != 1 {
		t.Errorf("rateLimitHits = %d, want 1", m.rateLimitHits)
	}

	// Another client has its own window.
	if !rl.allow("198.51.100.2", &m) {
		t.Error("fresh client was limited")
	}

	// An expired window resets the counter.
	rl.clients["198.51.100.1"].lastRequest = time.Now().Add(-2 * time.Minute)
	if !rl.allow("198.51.100.1", &m) {
		t.Error("client not reset after the window passed")
	}
}

func TestRateLimiterDropsStaleClients(t *testing.T) {
	rl := &rateLimiter{clients: make(map[string]*clientWindow), stopCleanup: make(chan struct{})}
	defer rl.stop()

	rl.clients["old"] = &clientWindow{lastRequest: time.Now().Add(-time.Hour)}
	rl.clients["fresh"] = &clientWindow{lastRequest: time.Now()}
	rl.dropStale()

	if _, ok := rl.clients["old"]; ok {
		t.Error("stale client survived cleanup")
	}
	if _, ok := rl.clients["fresh"]; !ok {
		t.Error("fresh client was dropped")
	}
}

func TestDetectSuspiciousRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
		agent  string
		want   bool
	}{
		{"plain page", "/journal", "Mozilla/5.0", false},
		{"path traversal", "/static/../../etc/passwd", "Mozilla/5.0", true},
		{"wordpress scan", "/wp-admin/setup.php", "Mozilla/5.0", true},
		{"sqlmap agent", "/", "sqlmap/1.7", true},
		{"env file in query", "/download?file=.env", "Mozilla/5.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			r.Header.Set("User-Agent", tt.agent)
			var m securityMetrics
			if got := detectSuspiciousRequest(r, &m); got != tt.want {
				t.Errorf("detectSuspiciousRequest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  běžný popis  ", "běžný popis"},
		{"a\x00b\x07c", "abc"},
		{"line1\nline2\ttab", "line1\nline2\ttab"},
	}
	for _, tt := range tests {
		if got := sanitizeInput(tt.in); got != tt.want {
			t.Errorf("sanitizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateRequestID(t *testing.T) {
	a, b := generateRequestID(), generateRequestID()
	if !strings.HasPrefix(a, "req_") {
		t.Errorf("request id %q missing prefix", a)
	}
	if a == b {
		t.Error("consecutive request ids collide")
	}
}

func TestFragmentResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	newFragment().
		Trigger("journal:refresh", struct{}{}).
		Notify("success", "uloženo").
		HTML("<p>ok</p>").
		Write(rec)

	if rec.Code != http.StatusOK {
		t.Errorf("code = %d", rec.Code)
	}
	trigger := rec.Header().Get("HX-Trigger")
	if !strings.Contains(trigger, "journal:refresh") || !strings.Contains(trigger, "uloženo") {
		t.Errorf("HX-Trigger = %q", trigger)
	}
	if rec.Body.String() != "<p>ok</p>" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestErrorFragmentEscapes(t *testing.T) {
	rec := httptest.NewRecorder()
	errorFragment(http.StatusBadRequest, `<img src=x onerror=alert(1)>`).Write(rec)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("code = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "<img") {
		t.Errorf("body not escaped: %q", rec.Body.String())
	}
}
