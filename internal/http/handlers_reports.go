package http

import (
	"log/slog"
	"net/http"

	"spolek/internal/export"
)

type reportsData struct {
	Lang         string
	T            uiText
	Summary      summaryView
	SheetsActive bool
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	lang := s.requestLanguage(r)
	s.render(w, r, "reports.html", reportsData{
		Lang:         string(lang),
		T:            textsFor(lang),
		Summary:      newSummaryView(s.ledger.Summary()),
		SheetsActive: s.sheets != nil,
	})
}

func (s *Server) handleTaxXML(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	data, err := export.TaxXML(s.ledger.Summary())
	if err != nil {
		slog.ErrorContext(r.Context(), "Tax XML export failed", "error", err, "component", "report_handler")
		errorFragment(http.StatusInternalServerError, errorsFor(s.requestLanguage(r)).ExportFailed).Write(w)
		return
	}
	serveDownload(w, "application/xml", "dppo.xml", data)
}

func (s *Server) handleSummaryXLSX(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	lang := s.requestLanguage(r)
	data, err := export.SummaryXLSX(s.ledger.Summary(), lang)
	if err != nil {
		slog.ErrorContext(r.Context(), "XLSX export failed", "error", err, "component", "report_handler")
		errorFragment(http.StatusInternalServerError, errorsFor(lang).ExportFailed).Write(w)
		return
	}
	serveDownload(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "prehled.xlsx", data)
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	lang := s.requestLanguage(r)
	data, err := export.ReportPDF(s.ledger.Summary(), lang)
	if err != nil {
		slog.ErrorContext(r.Context(), "PDF export failed", "error", err, "component", "report_handler")
		errorFragment(http.StatusInternalServerError, errorsFor(lang).ExportFailed).Write(w)
		return
	}
	serveDownload(w, "application/pdf", "prehled.pdf", data)
}

// handleSnapshot pushes the current summary to the configured spreadsheet.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	et := errorsFor(s.requestLanguage(r))
	if s.sheets == nil {
		errorFragment(http.StatusServiceUnavailable, et.SheetsOff).Write(w)
		return
	}
	if err := s.sheets.AppendSnapshot(r.Context(), s.ledger.Summary()); err != nil {
		slog.ErrorContext(r.Context(), "Snapshot push failed",
			"error", err,
			"component", "report_handler",
			"operation", "snapshot")
		errorFragment(http.StatusBadGateway, et.SnapshotFailed).Write(w)
		return
	}
	newFragment().
		Notify("success", "Snapshot saved").
		Write(w)
}
