// Package http serves the bookkeeping UI. Pages are server-rendered from
// embedded templates and the interactive parts exchange HTML fragments over
// HTMX, so the browser never sees a JSON API.
package http

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"spolek/internal/assistant"
	"spolek/internal/cache"
	"spolek/internal/checklist"
	"spolek/internal/core"
	"spolek/internal/inventory"
	"spolek/internal/report"
	"spolek/internal/services"
	appweb "spolek/web"
)

// ChecklistStore is the persistence the checklist handlers need.
type ChecklistStore interface {
	ListChecklist(ctx context.Context) ([]checklist.Item, error)
	ToggleChecked(ctx context.Context, id string) (bool, error)
}

// SnapshotSink receives report snapshots pushed from the reports page.
type SnapshotSink interface {
	AppendSnapshot(ctx context.Context, s report.Summary) error
}

// Config carries the server settings resolved at startup.
type Config struct {
	Port            string
	DefaultLanguage core.Language
	UpdatesCacheTTL time.Duration
}

// Server hosts the association bookkeeping UI.
type Server struct {
	http.Server

	templates *template.Template
	lang      core.Language

	ledger    *services.LedgerService
	imports   *services.ImportService
	assist    *assistant.Assistant
	checklist ChecklistStore
	assets    *inventory.List
	sheets    SnapshotSink

	// updatesCache holds assistant answers for the legislative-updates
	// panel, keyed by language. Report figures are always recomputed.
	updatesCache *cache.LRUCache[string]
	caches       *cache.Manager

	limiter      *rateLimiter
	metrics      securityMetrics
	shutdownOnce sync.Once
}

// NewServer wires the handlers and middleware. Any of assist, checklist,
// assets and sheets may be nil-backed; the affected pages degrade instead of
// failing at startup.
func NewServer(cfg Config, ledgerSvc *services.LedgerService, importSvc *services.ImportService, assist *assistant.Assistant, checklistStore ChecklistStore, assets *inventory.List, sheets SnapshotSink) *Server {
	tmpl, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed to parse templates, pages will return errors", "error", err)
	}

	ttl := cfg.UpdatesCacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	lang := cfg.DefaultLanguage
	if lang == "" {
		lang = core.Czech
	}

	s := &Server{
		templates:    tmpl,
		lang:         lang,
		ledger:       ledgerSvc,
		imports:      importSvc,
		assist:       assist,
		checklist:    checklistStore,
		assets:       assets,
		sheets:       sheets,
		updatesCache: cache.NewLRUCache[string](4, ttl),
		caches:       cache.NewManager(),
		limiter:      newRateLimiter(),
	}
	s.caches.Register(s.updatesCache)
	s.caches.StartCleanup(5 * time.Minute)

	mux := http.NewServeMux()

	mux.HandleFunc("/", s.withSecurityHeaders(s.handleIndex))
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/readyz", s.handleReadyz)

	mux.HandleFunc("/journal", s.withSecurityHeaders(s.handleJournal))
	mux.HandleFunc("/entries", s.withSecurityHeaders(s.handleCreateEntry))
	mux.HandleFunc("/entries/delete", s.withSecurityHeaders(s.handleDeleteEntry))
	mux.HandleFunc("/entries/categorize", s.withSecurityHeaders(s.handleCategorize))

	mux.HandleFunc("/reports", s.withSecurityHeaders(s.handleReports))
	mux.HandleFunc("/reports/tax.xml", s.withSecurityHeaders(s.handleTaxXML))
	mux.HandleFunc("/reports/summary.xlsx", s.withSecurityHeaders(s.handleSummaryXLSX))
	mux.HandleFunc("/reports/report.pdf", s.withSecurityHeaders(s.handleReportPDF))
	mux.HandleFunc("/reports/snapshot", s.withSecurityHeaders(s.handleSnapshot))

	mux.HandleFunc("/import", s.withSecurityHeaders(s.handleImportUpload))
	mux.HandleFunc("/import/select", s.withSecurityHeaders(s.handleImportSelect))
	mux.HandleFunc("/import/confirm", s.withSecurityHeaders(s.handleImportConfirm))
	mux.HandleFunc("/import/cancel", s.withSecurityHeaders(s.handleImportCancel))

	mux.HandleFunc("/guide", s.withSecurityHeaders(s.handleGuide))
	mux.HandleFunc("/advisor", s.withSecurityHeaders(s.handleAdvisor))
	mux.HandleFunc("/advisor/ask", s.withSecurityHeaders(s.handleAdvisorAsk))
	mux.HandleFunc("/advisor/advice", s.withSecurityHeaders(s.handleAdvisorAdvice))
	mux.HandleFunc("/advisor/updates", s.withSecurityHeaders(s.handleAdvisorUpdates))

	mux.HandleFunc("/checklist", s.withSecurityHeaders(s.handleChecklist))
	mux.HandleFunc("/checklist/toggle", s.withSecurityHeaders(s.handleChecklistToggle))

	mux.HandleFunc("/documents", s.withSecurityHeaders(s.handleDocuments))
	mux.HandleFunc("/documents/minutes", s.withSecurityHeaders(s.handleMinutes))
	mux.HandleFunc("/documents/minutes.pdf", s.withSecurityHeaders(s.handleMinutesPDF))
	mux.HandleFunc("/documents/assets", s.withSecurityHeaders(s.handleAddAsset))
	mux.HandleFunc("/documents/inventory.pdf", s.withSecurityHeaders(s.handleInventoryPDF))

	if static, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		fileServer := http.FileServer(http.FS(static))
		mux.Handle("/static/", http.StripPrefix("/static/", cacheStatic(fileServer)))
	} else {
		slog.Warn("Static assets unavailable", "error", err)
	}

	s.Server = http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s
}

func cacheStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
		next.ServeHTTP(w, r)
	})
}

// responseWriter captures the status code for the completion log line.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// withSecurityHeaders attaches the request ID, security headers, rate
// limiting for mutating methods and the start/complete log pair.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := generateRequestID()
		clientIP := extractClientIP(r)

		if detectSuspiciousRequest(r, &s.metrics) {
			slog.WarnContext(r.Context(), "Suspicious request pattern",
				"request_id", requestID,
				"client_ip", clientIP,
				"method", r.Method,
				"path", r.URL.Path,
				"user_agent", r.Header.Get("User-Agent"))
		}

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			if !s.limiter.allow(clientIP, &s.metrics) {
				slog.WarnContext(r.Context(), "Rate limit exceeded",
					"request_id", requestID,
					"client_ip", clientIP,
					"path", r.URL.Path)
				w.Header().Set("Retry-After", "60")
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy",
			"default-src 'self'; script-src 'self' https://unpkg.com 'unsafe-eval'; style-src 'self' 'unsafe-inline'; img-src 'self' data:")
		w.Header().Set("X-Request-ID", requestID)

		slog.InfoContext(r.Context(), "Request started",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"client_ip", clientIP)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(r.Context(), "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "ok")
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "ready")
}

// Shutdown stops the background workers before draining connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		s.limiter.stop()
		s.caches.Stop()
	})
	return s.Server.Shutdown(ctx)
}
