package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"spolek/internal/core"
)

// requestLanguage picks the UI language: explicit lang parameter first, then
// the lang cookie, then the server default.
func (s *Server) requestLanguage(r *http.Request) core.Language {
	if v := r.URL.Query().Get("lang"); v != "" {
		return core.NormalizeLanguage(v)
	}
	if v := r.FormValue("lang"); v != "" {
		return core.NormalizeLanguage(v)
	}
	if c, err := r.Cookie("lang"); err == nil && c.Value != "" {
		return core.NormalizeLanguage(c.Value)
	}
	return s.lang
}

// sanitizeInput trims whitespace and strips control characters except tab
// and newlines.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// requireMethod writes a 405 and returns false when the request method does
// not match.
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// serveDownload writes a generated file with an attachment disposition.
func serveDownload(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
