package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"spolek/internal/assistant"
	"spolek/internal/core"
	"spolek/internal/importer"
)

var (
	ErrSessionNotFound  = errors.New("import session not found")
	ErrUnsupportedFile  = errors.New("unsupported file type")
	ErrCandidateMissing = errors.New("import candidate not found")
	ErrNothingExtracted = errors.New("no transactions found in the file")
)

// ImportService runs the upload-review-confirm flow. Sessions live in
// memory until they are confirmed or cancelled.
type ImportService struct {
	assistant *assistant.Assistant
	ledger    *LedgerService

	mu       sync.Mutex
	sessions map[string]*importer.Session
}

func NewImportService(a *assistant.Assistant, l *LedgerService) *ImportService {
	return &ImportService{
		assistant: a,
		ledger:    l,
		sessions:  make(map[string]*importer.Session),
	}
}

// StartFromUpload extracts drafts from the uploaded file, reconciles them
// against the journal and opens a review session. PDFs and images go to the
// model as binary; CSV goes as text; XLSX is flattened to CSV first.
func (s *ImportService) StartFromUpload(ctx context.Context, filename, contentType string, data []byte) (*importer.Session, error) {
	drafts, err := s.extract(ctx, filename, contentType, data)
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNothingExtracted, filename)
	}

	sess := importer.Reconcile(s.ledger.List(), drafts)
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *ImportService) extract(ctx context.Context, filename, contentType string, data []byte) ([]importer.Draft, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case contentType == "application/pdf" || ext == ".pdf":
		return s.assistant.ParseDocument(ctx, data, "application/pdf")
	case strings.HasPrefix(contentType, "image/"):
		return s.assistant.ParseDocument(ctx, data, contentType)
	case ext == ".png":
		return s.assistant.ParseDocument(ctx, data, "image/png")
	case ext == ".jpg" || ext == ".jpeg":
		return s.assistant.ParseDocument(ctx, data, "image/jpeg")
	case ext == ".csv" || contentType == "text/csv":
		return s.assistant.ParseTabular(ctx, string(data))
	case ext == ".xlsx":
		csvText, err := xlsxToCSV(data)
		if err != nil {
			return nil, fmt.Errorf("read workbook: %w", err)
		}
		return s.assistant.ParseTabular(ctx, csvText)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filename)
	}
}

// xlsxToCSV flattens the first sheet of a workbook into CSV text.
func xlsxToCSV(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// Session returns an open session by id.
func (s *ImportService) Session(id string) (*importer.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// SetSelected overrides one candidate's inclusion choice.
func (s *ImportService) SetSelected(sessionID, tempID string, selected bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	if !sess.SetSelected(tempID, selected) {
		return ErrCandidateMissing
	}
	return nil
}

// ctxAdder lets the session confirm through the ledger service so audit
// events fire for imported entries too.
type ctxAdder struct {
	ctx    context.Context
	ledger *LedgerService
}

func (a ctxAdder) Add(tx core.Transaction) (core.Transaction, error) {
	return a.ledger.Create(a.ctx, tx)
}

// Confirm materializes the selected candidates and closes the session.
func (s *ImportService) Confirm(ctx context.Context, sessionID string) (added []core.Transaction, skipped []importer.Candidate, err error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()
	if !ok {
		return nil, nil, ErrSessionNotFound
	}
	return sess.Confirm(ctxAdder{ctx: ctx, ledger: s.ledger})
}

// Cancel discards an open session without touching the journal.
func (s *ImportService) Cancel(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	sess.Cancel()
	delete(s.sessions, sessionID)
	return nil
}
