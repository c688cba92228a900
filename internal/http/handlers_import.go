package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"spolek/internal/assistant"
	"spolek/internal/core"
	"spolek/internal/importer"
	"spolek/internal/services"
)

// maxUploadBytes caps bank statement uploads at 10 MiB.
const maxUploadBytes = 10 << 20

type importReviewData struct {
	Lang       string
	T          uiText
	SessionID  string
	Candidates []candidateView
	Selected   int
}

func (s *Server) reviewData(sess *importer.Session, lang core.Language) importReviewData {
	views := make([]candidateView, 0, len(sess.Candidates))
	for _, c := range sess.Candidates {
		views = append(views, newCandidateView(c, lang))
	}
	return importReviewData{
		Lang:       string(lang),
		T:          textsFor(lang),
		SessionID:  sess.ID,
		Candidates: views,
		Selected:   sess.SelectedCount(),
	}
}

// handleImportUpload accepts a bank statement (CSV, XLSX, PDF or photo),
// has the assistant extract drafts and renders the review table.
func (s *Server) handleImportUpload(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	lang := s.requestLanguage(r)
	et := errorsFor(lang)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		errorFragment(http.StatusBadRequest, et.InvalidUpload).Write(w)
		return
	}

	file, header, err := r.FormFile("statement")
	if err != nil {
		errorFragment(http.StatusBadRequest, et.MissingStatement).Write(w)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		errorFragment(http.StatusBadRequest, et.UploadRead).Write(w)
		return
	}

	sess, err := s.imports.StartFromUpload(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedFile):
			errorFragment(http.StatusUnsupportedMediaType, et.UnsupportedFile).Write(w)
		case errors.Is(err, assistant.ErrNoAPIKey):
			errorFragment(http.StatusServiceUnavailable, et.AssistantOff).Write(w)
		case errors.Is(err, services.ErrNothingExtracted):
			errorFragment(http.StatusUnprocessableEntity, et.NothingExtracted).Write(w)
		default:
			slog.ErrorContext(r.Context(), "Import extraction failed",
				"error", err,
				"filename", header.Filename,
				"component", "import_handler",
				"operation", "upload")
			errorFragment(http.StatusUnprocessableEntity, et.NothingExtracted).Write(w)
		}
		return
	}

	slog.InfoContext(r.Context(), "Import session started",
		"session_id", sess.ID,
		"candidates", len(sess.Candidates),
		"component", "import_handler")

	s.render(w, r, "import_review.html", s.reviewData(sess, lang))
}

func (s *Server) handleImportSelect(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	lang := s.requestLanguage(r)
	et := errorsFor(lang)
	if err := r.ParseForm(); err != nil {
		errorFragment(http.StatusBadRequest, et.InvalidForm).Write(w)
		return
	}

	sessionID := sanitizeInput(r.Form.Get("session"))
	tempID := sanitizeInput(r.Form.Get("candidate"))
	selected := r.Form.Get("selected") == "on" || r.Form.Get("selected") == "true"

	if err := s.imports.SetSelected(sessionID, tempID, selected); err != nil {
		msg := et.SessionExpired
		if errors.Is(err, services.ErrCandidateMissing) {
			msg = et.ItemNotFound
		}
		errorFragment(http.StatusNotFound, msg).Write(w)
		return
	}

	sess, ok := s.imports.Session(sessionID)
	if !ok {
		errorFragment(http.StatusNotFound, et.SessionExpired).Write(w)
		return
	}
	s.render(w, r, "import_review.html", s.reviewData(sess, lang))
}

func (s *Server) handleImportConfirm(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	et := errorsFor(s.requestLanguage(r))
	if err := r.ParseForm(); err != nil {
		errorFragment(http.StatusBadRequest, et.InvalidForm).Write(w)
		return
	}

	sessionID := sanitizeInput(r.Form.Get("session"))
	added, skipped, err := s.imports.Confirm(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			errorFragment(http.StatusNotFound, et.SessionExpired).Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Import confirm failed",
			"error", err,
			"session_id", sessionID,
			"component", "import_handler",
			"operation", "confirm")
		errorFragment(http.StatusInternalServerError, et.ImportFailed).Write(w)
		return
	}

	slog.InfoContext(r.Context(), "Import confirmed",
		"session_id", sessionID,
		"added", len(added),
		"skipped", len(skipped),
		"component", "import_handler")

	newFragment().
		Trigger("journal:refresh", struct{}{}).
		Trigger("import:done", map[string]int{"added": len(added), "skipped": len(skipped)}).
		Notify("success", fmt.Sprintf("Imported %d entries", len(added))).
		Write(w)
}

func (s *Server) handleImportCancel(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	et := errorsFor(s.requestLanguage(r))
	if err := r.ParseForm(); err != nil {
		errorFragment(http.StatusBadRequest, et.InvalidForm).Write(w)
		return
	}

	sessionID := sanitizeInput(r.Form.Get("session"))
	if err := s.imports.Cancel(sessionID); err != nil {
		errorFragment(http.StatusNotFound, et.SessionExpired).Write(w)
		return
	}

	newFragment().
		Trigger("import:done", map[string]int{"added": 0, "skipped": 0}).
		Write(w)
}
