package http

import (
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"spolek/internal/assistant"
	"spolek/internal/core"
)

type advisorData struct {
	Lang      string
	T         uiText
	Available bool
}

func (s *Server) handleAdvisor(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	lang := s.requestLanguage(r)
	s.render(w, r, "advisor.html", advisorData{
		Lang:      string(lang),
		T:         textsFor(lang),
		Available: s.assist != nil && s.assist.Available(),
	})
}

// ledgerContext summarizes the journal for the assistant prompts.
func (s *Server) ledgerContext(lang core.Language) string {
	sum := s.ledger.Summary()
	return assistant.LedgerContext(sum.TotalIncome, sum.TotalExpense, sum.Count, lang)
}

// handleAdvisorAsk answers a free-form question, optionally with an attached
// photo (a receipt, a form, a letter from the tax office).
func (s *Server) handleAdvisorAsk(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	lang := s.requestLanguage(r)
	et := errorsFor(lang)

	var message string
	var image *assistant.Blob

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			errorFragment(http.StatusBadRequest, et.InvalidForm).Write(w)
			return
		}
		message = sanitizeInput(r.Form.Get("message"))
		if file, header, err := r.FormFile("image"); err == nil {
			data, readErr := io.ReadAll(file)
			_ = file.Close()
			if readErr != nil {
				errorFragment(http.StatusBadRequest, et.ImageRead).Write(w)
				return
			}
			mime := header.Header.Get("Content-Type")
			if mime == "" {
				mime = "image/jpeg"
			}
			image = &assistant.Blob{MIMEType: mime, Data: data}
		}
	} else {
		if err := r.ParseForm(); err != nil {
			errorFragment(http.StatusBadRequest, et.InvalidForm).Write(w)
			return
		}
		message = sanitizeInput(r.Form.Get("message"))
	}

	if message == "" && image == nil {
		errorFragment(http.StatusUnprocessableEntity, et.EmptyQuestion).Write(w)
		return
	}

	answer, err := s.assist.Reply(r.Context(), message, s.ledgerContext(lang), image, lang)
	if err != nil {
		if errors.Is(err, assistant.ErrNoAPIKey) {
			errorFragment(http.StatusServiceUnavailable, et.AssistantOff).Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Advisor reply failed",
			"error", err,
			"component", "advisor_handler",
			"operation", "ask")
		errorFragment(http.StatusBadGateway, et.AssistantDown).Write(w)
		return
	}

	newFragment().
		HTML(`<div class="chat-answer">` + template.HTMLEscapeString(answer) + `</div>`).
		Write(w)
}

// handleAdvisorAdvice answers a structured accounting question with the
// journal figures as context.
func (s *Server) handleAdvisorAdvice(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	lang := s.requestLanguage(r)
	et := errorsFor(lang)
	if err := r.ParseForm(); err != nil {
		errorFragment(http.StatusBadRequest, et.InvalidForm).Write(w)
		return
	}

	query := sanitizeInput(r.Form.Get("query"))
	if query == "" {
		errorFragment(http.StatusUnprocessableEntity, et.EmptyQuestion).Write(w)
		return
	}

	answer, err := s.assist.Advice(r.Context(), query, s.ledgerContext(lang), lang)
	if err != nil {
		if errors.Is(err, assistant.ErrNoAPIKey) {
			errorFragment(http.StatusServiceUnavailable, et.AssistantOff).Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Advice failed",
			"error", err,
			"component", "advisor_handler",
			"operation", "advice")
		errorFragment(http.StatusBadGateway, et.AssistantDown).Write(w)
		return
	}

	newFragment().
		HTML(`<div class="chat-answer">` + template.HTMLEscapeString(answer) + `</div>`).
		Write(w)
}

// handleAdvisorUpdates serves the legislative-updates digest. Answers are
// cached per language because the underlying question changes rarely and
// the model call is slow.
func (s *Server) handleAdvisorUpdates(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	lang := s.requestLanguage(r)
	et := errorsFor(lang)
	key := "updates:" + string(lang)

	if cached, ok := s.updatesCache.Get(key); ok {
		newFragment().
			HTML(`<div class="updates">` + template.HTMLEscapeString(cached) + `</div>`).
			Write(w)
		return
	}

	digest, err := s.assist.LegislativeUpdates(r.Context(), lang)
	if err != nil {
		if errors.Is(err, assistant.ErrNoAPIKey) {
			errorFragment(http.StatusServiceUnavailable, et.AssistantOff).Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Legislative updates failed",
			"error", err,
			"component", "advisor_handler",
			"operation", "updates")
		errorFragment(http.StatusBadGateway, et.AssistantDown).Write(w)
		return
	}

	s.updatesCache.Set(key, digest)
	newFragment().
		HTML(`<div class="updates">` + template.HTMLEscapeString(digest) + `</div>`).
		Write(w)
}
