package http

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"spolek/internal/assistant"
	"spolek/internal/core"
	"spolek/internal/ledger"
)

type journalData struct {
	Lang    string
	T       uiText
	Entries []entryView
	Summary summaryView
	Filter  ledger.Criteria
}

type indexData struct {
	Lang               string
	T                  uiText
	Journal            journalData
	AssistantAvailable bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	lang := s.requestLanguage(r)
	s.render(w, r, "index.html", indexData{
		Lang:               string(lang),
		T:                  textsFor(lang),
		Journal:            s.journalData(r, lang),
		AssistantAvailable: s.assist != nil && s.assist.Available(),
	})
}

// handleJournal serves the journal table partial, filtered by the query
// parameters.
func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	lang := s.requestLanguage(r)
	s.render(w, r, "journal.html", s.journalData(r, lang))
}

func (s *Server) journalData(r *http.Request, lang core.Language) journalData {
	criteria := criteriaFromQuery(r.URL.Query())
	entries := s.ledger.Filter(criteria)

	views := make([]entryView, 0, len(entries))
	for _, t := range entries {
		views = append(views, newEntryView(t, lang))
	}

	return journalData{
		Lang:    string(lang),
		T:       textsFor(lang),
		Entries: views,
		Summary: newSummaryView(s.ledger.Summary()),
		Filter:  criteria,
	}
}

func criteriaFromQuery(q url.Values) ledger.Criteria {
	return ledger.Criteria{
		Date:        sanitizeInput(q.Get("date")),
		Description: sanitizeInput(q.Get("description")),
		Activity:    core.ActivityType(strings.ToUpper(sanitizeInput(q.Get("activity")))),
		TaxCategory: core.TaxCategory(strings.ToUpper(sanitizeInput(q.Get("tax")))),
		Amount:      sanitizeInput(q.Get("amount")),
	}
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	et := errorsFor(s.requestLanguage(r))
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "path", r.URL.Path)
		errorFragment(http.StatusBadRequest, et.InvalidForm).Write(w)
		return
	}

	date, err := core.ParseDate(strings.TrimSpace(r.Form.Get("date")))
	if err != nil {
		errorFragment(http.StatusUnprocessableEntity, et.InvalidDate).Write(w)
		return
	}

	cents, err := core.ParseDecimalToCents(strings.TrimSpace(r.Form.Get("amount")))
	if err != nil {
		errorFragment(http.StatusUnprocessableEntity, et.InvalidAmount).Write(w)
		return
	}

	tx := core.Transaction{
		Date:           date,
		Description:    sanitizeInput(r.Form.Get("description")),
		Amount:         core.Money{Cents: cents},
		Type:           core.TransactionType(strings.ToUpper(sanitizeInput(r.Form.Get("type")))),
		ActivityType:   core.ActivityType(strings.ToUpper(sanitizeInput(r.Form.Get("activity")))),
		TaxCategory:    core.TaxCategory(strings.ToUpper(sanitizeInput(r.Form.Get("tax")))),
		VariableSymbol: sanitizeInput(r.Form.Get("variable_symbol")),
		Note:           sanitizeInput(r.Form.Get("note")),
	}

	created, err := s.ledger.Create(r.Context(), tx)
	if err != nil {
		errorFragment(http.StatusUnprocessableEntity, validationMessage(et, err)).Write(w)
		return
	}

	slog.InfoContext(r.Context(), "Journal entry created",
		"entry_id", created.ID,
		"entry_description", created.Description,
		"amount_cents", created.Amount.Cents,
		"type", string(created.Type),
		"component", "journal_handler",
		"operation", "create")

	msg := fmt.Sprintf("%s: %s", created.Description, core.FormatCZK(created.Amount.Cents))
	newFragment().
		Trigger("journal:refresh", struct{}{}).
		Trigger("form:reset", struct{}{}).
		Notify("success", msg).
		Write(w)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		w.Header().Set("Allow", "POST, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	et := errorsFor(s.requestLanguage(r))
	if err := r.ParseForm(); err != nil {
		errorFragment(http.StatusBadRequest, et.InvalidForm).Write(w)
		return
	}

	id := sanitizeInput(r.Form.Get("id"))
	if id == "" {
		errorFragment(http.StatusBadRequest, et.MissingEntryID).Write(w)
		return
	}

	if !s.ledger.Remove(r.Context(), id) {
		errorFragment(http.StatusNotFound, et.EntryNotFound).Write(w)
		return
	}

	slog.InfoContext(r.Context(), "Journal entry removed",
		"entry_id", id,
		"component", "journal_handler",
		"operation", "delete")

	newFragment().
		Trigger("journal:refresh", struct{}{}).
		Write(w)
}

// handleCategorize asks the assistant to classify a described transaction
// and returns a fragment plus a categorize:done event carrying the stable
// tags so the form can preselect them.
func (s *Server) handleCategorize(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	lang := s.requestLanguage(r)
	et := errorsFor(lang)
	if err := r.ParseForm(); err != nil {
		errorFragment(http.StatusBadRequest, et.InvalidForm).Write(w)
		return
	}

	desc := sanitizeInput(r.Form.Get("description"))
	if desc == "" {
		errorFragment(http.StatusUnprocessableEntity, et.MissingDescription).Write(w)
		return
	}

	suggestion, err := s.assist.Categorize(r.Context(), desc, lang)
	if err != nil {
		if errors.Is(err, assistant.ErrNoAPIKey) {
			errorFragment(http.StatusServiceUnavailable, et.AssistantOff).Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Categorize failed",
			"error", err,
			"component", "journal_handler",
			"operation", "categorize")
		errorFragment(http.StatusBadGateway, et.AssistantDown).Write(w)
		return
	}

	body := fmt.Sprintf(`<div class="suggestion">%s / %s / %s<span class="reasoning">%s</span></div>`,
		template.HTMLEscapeString(suggestion.Type.Label(lang)),
		template.HTMLEscapeString(suggestion.Activity.Label(lang)),
		template.HTMLEscapeString(suggestion.TaxCategory.Label(lang)),
		template.HTMLEscapeString(suggestion.Reasoning))

	newFragment().
		Trigger("categorize:done", map[string]string{
			"type":     string(suggestion.Type),
			"activity": string(suggestion.Activity),
			"tax":      string(suggestion.TaxCategory),
		}).
		HTML(body).
		Write(w)
}
