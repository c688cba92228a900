package http

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"spolek/internal/assistant"
	"spolek/internal/core"
	"spolek/internal/export"
	"spolek/internal/inventory"
)

type documentsData struct {
	Lang   string
	T      uiText
	Assets []assetView
	Total  string
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	lang := s.requestLanguage(r)
	s.render(w, r, "documents.html", documentsData{
		Lang:   string(lang),
		T:      textsFor(lang),
		Assets: newAssetViews(s.assets.Items()),
		Total:  core.FormatCZK(s.assets.Total()),
	})
}

// handleMinutes drafts meeting minutes from the form inputs. The draft comes
// back as editable text, not as a finished file; the PDF is a separate step.
func (s *Server) handleMinutes(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	lang := s.requestLanguage(r)
	et := errorsFor(lang)
	if err := r.ParseForm(); err != nil {
		errorFragment(http.StatusBadRequest, et.InvalidForm).Write(w)
		return
	}

	req := assistant.MinutesRequest{
		Date:        sanitizeInput(r.Form.Get("date")),
		MeetingType: sanitizeInput(r.Form.Get("meeting_type")),
		Attendees:   sanitizeInput(r.Form.Get("attendees")),
		Points:      sanitizeInput(r.Form.Get("points")),
	}
	if req.Points == "" {
		errorFragment(http.StatusUnprocessableEntity, et.MissingAgenda).Write(w)
		return
	}

	text, err := s.assist.MeetingMinutes(r.Context(), req, lang)
	if err != nil {
		if errors.Is(err, assistant.ErrNoAPIKey) {
			errorFragment(http.StatusServiceUnavailable, et.AssistantOff).Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Minutes draft failed",
			"error", err,
			"component", "documents_handler",
			"operation", "minutes")
		errorFragment(http.StatusBadGateway, et.AssistantDown).Write(w)
		return
	}

	body := `<textarea id="minutes-text" name="text" rows="18">` +
		template.HTMLEscapeString(text) + `</textarea>`
	newFragment().
		Trigger("minutes:drafted", struct{}{}).
		HTML(body).
		Write(w)
}

// handleMinutesPDF renders the (possibly hand-edited) minutes text as PDF.
func (s *Server) handleMinutesPDF(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	et := errorsFor(s.requestLanguage(r))
	if err := r.ParseForm(); err != nil {
		errorFragment(http.StatusBadRequest, et.InvalidForm).Write(w)
		return
	}

	text := strings.TrimSpace(r.Form.Get("text"))
	if text == "" {
		errorFragment(http.StatusUnprocessableEntity, et.EmptyMinutes).Write(w)
		return
	}

	data, err := export.MinutesPDF(text)
	if err != nil {
		slog.ErrorContext(r.Context(), "Minutes PDF failed", "error", err, "component", "documents_handler")
		errorFragment(http.StatusInternalServerError, et.ExportFailed).Write(w)
		return
	}
	serveDownload(w, "application/pdf", "zapis.pdf", data)
}

func (s *Server) handleAddAsset(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	et := errorsFor(s.requestLanguage(r))
	if err := r.ParseForm(); err != nil {
		errorFragment(http.StatusBadRequest, et.InvalidForm).Write(w)
		return
	}

	cents, err := core.ParseDecimalToCents(strings.TrimSpace(r.Form.Get("value")))
	if err != nil {
		errorFragment(http.StatusUnprocessableEntity, et.InvalidAsset).Write(w)
		return
	}

	asset := inventory.Asset{
		Name:  sanitizeInput(r.Form.Get("name")),
		Value: cents,
	}
	if err := s.assets.Add(asset); err != nil {
		errorFragment(http.StatusUnprocessableEntity, et.InvalidAsset).Write(w)
		return
	}

	newFragment().
		Trigger("inventory:changed", struct{}{}).
		Write(w)
}

// handleInventoryPDF renders the year-end inventory protocol with the cash
// and bank balances taken from the journal.
func (s *Server) handleInventoryPDF(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	lang := s.requestLanguage(r)
	data, err := export.InventoryPDF(s.ledger.Summary(), s.assets.Items(), lang)
	if err != nil {
		slog.ErrorContext(r.Context(), "Inventory PDF failed", "error", err, "component", "documents_handler")
		errorFragment(http.StatusInternalServerError, errorsFor(lang).ExportFailed).Write(w)
		return
	}
	serveDownload(w, "application/pdf", "inventarizace.pdf", data)
}
