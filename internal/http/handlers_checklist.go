package http

import (
	"errors"
	"log/slog"
	"net/http"

	"spolek/internal/checklist"
)

type checklistSection struct {
	Category string
	Items    []checklist.Item
}

type checklistData struct {
	Lang     string
	T        uiText
	Sections []checklistSection
}

var categoryHeadings = map[checklist.Category]string{
	checklist.Start:   "Založení spolku",
	checklist.Ongoing: "Průběžné povinnosti",
	checklist.End:     "Konec účetního období",
}

func (s *Server) handleChecklist(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	lang := s.requestLanguage(r)
	items, err := s.checklist.ListChecklist(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Checklist load failed",
			"error", err,
			"component", "checklist_handler")
		errorFragment(http.StatusInternalServerError, errorsFor(lang).ChecklistDown).Write(w)
		return
	}

	grouped := checklist.ByCategory(items)
	sections := make([]checklistSection, 0, len(checklist.Categories))
	for _, cat := range checklist.Categories {
		sections = append(sections, checklistSection{
			Category: categoryHeadings[cat],
			Items:    grouped[cat],
		})
	}

	s.render(w, r, "checklist.html", checklistData{
		Lang:     string(lang),
		T:        textsFor(lang),
		Sections: sections,
	})
}

func (s *Server) handleChecklistToggle(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	et := errorsFor(s.requestLanguage(r))
	if err := r.ParseForm(); err != nil {
		errorFragment(http.StatusBadRequest, et.InvalidForm).Write(w)
		return
	}

	id := sanitizeInput(r.Form.Get("id"))
	if id == "" {
		errorFragment(http.StatusBadRequest, et.MissingItemID).Write(w)
		return
	}

	checked, err := s.checklist.ToggleChecked(r.Context(), id)
	if err != nil {
		if errors.Is(err, checklist.ErrNotFound) {
			errorFragment(http.StatusNotFound, et.ItemNotFound).Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Checklist toggle failed",
			"error", err,
			"item_id", id,
			"component", "checklist_handler")
		errorFragment(http.StatusInternalServerError, et.ToggleFailed).Write(w)
		return
	}

	newFragment().
		Trigger("checklist:toggled", map[string]any{"id": id, "checked": checked}).
		Write(w)
}
