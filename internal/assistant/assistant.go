// Package assistant is the AI collaborator: it turns free text and documents
// into structured transaction drafts, suggests classifications and answers
// accounting questions. All intelligence is delegated to a generative model
// behind the Generator interface; without a configured API key every
// operation degrades to a deterministic local answer and no request is made.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"spolek/internal/core"
	"spolek/internal/importer"
)

// ErrNoAPIKey is reported by parse operations when no model credential is
// configured. Conversational operations return a localized message instead.
var ErrNoAPIKey = errors.New("missing model API key")

// Generator is the single seam to the generative model. The Gemini
// implementation lives in gemini.go; tests use a fake.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request is one model invocation: an optional system instruction, the user
// text, an optional inline binary part and whether a JSON answer is
// required.
type Request struct {
	System string
	Text   string
	Blob   *Blob
	JSON   bool
}

// Blob is an inline binary attachment (PDF, image).
type Blob struct {
	MIMEType string
	Data     []byte
}

// Suggestion is the model's classification of a single described
// transaction.
type Suggestion struct {
	Type        core.TransactionType
	Activity    core.ActivityType
	TaxCategory core.TaxCategory
	Reasoning   string
}

// MinutesRequest carries the inputs for a meeting-minutes draft.
type MinutesRequest struct {
	Date        string
	MeetingType string
	Attendees   string
	Points      string
}

// Assistant wires the prompts to the generator. A nil generator means no
// credential was configured.
type Assistant struct {
	gen Generator
}

func New(gen Generator) *Assistant {
	return &Assistant{gen: gen}
}

// Available reports whether a model credential is configured.
func (a *Assistant) Available() bool {
	return a != nil && a.gen != nil
}

var fallbacks = map[core.Language]string{
	core.Czech:   "Pro využití AI asistenta prosím nastavte API klíč.",
	core.English: "Please configure an API key to use the AI assistant.",
}

func fallback(lang core.Language) string {
	if msg, ok := fallbacks[lang]; ok {
		return msg
	}
	return fallbacks[core.Czech]
}

// Categorize asks the model to classify a described transaction under Czech
// non-profit accounting rules.
func (a *Assistant) Categorize(ctx context.Context, description string, lang core.Language) (Suggestion, error) {
	if !a.Available() {
		return Suggestion{}, ErrNoAPIKey
	}
	out, err := a.gen.Generate(ctx, Request{
		System: categorizeSystem(lang),
		Text:   categorizePrompt(description),
		JSON:   true,
	})
	if err != nil {
		return Suggestion{}, fmt.Errorf("categorize: %w", err)
	}
	return decodeSuggestion(out)
}

// ParseDocument extracts transaction drafts from a PDF or image.
func (a *Assistant) ParseDocument(ctx context.Context, data []byte, mimeType string) ([]importer.Draft, error) {
	if !a.Available() {
		return nil, ErrNoAPIKey
	}
	out, err := a.gen.Generate(ctx, Request{
		System: extractionSystem,
		Text:   documentPrompt,
		Blob:   &Blob{MIMEType: mimeType, Data: data},
		JSON:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return decodeDrafts(out)
}

// maxTabularChars bounds how much pasted CSV/XLSX text goes to the model.
const maxTabularChars = 30000

// ParseTabular extracts transaction drafts from CSV text (spreadsheets are
// converted to CSV by the caller).
func (a *Assistant) ParseTabular(ctx context.Context, csvText string) ([]importer.Draft, error) {
	if !a.Available() {
		return nil, ErrNoAPIKey
	}
	if len(csvText) > maxTabularChars {
		csvText = csvText[:maxTabularChars]
	}
	out, err := a.gen.Generate(ctx, Request{
		System: extractionSystem,
		Text:   tabularPrompt(csvText),
		JSON:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("parse tabular: %w", err)
	}
	return decodeDrafts(out)
}

// Advice answers an accounting question with the current ledger figures as
// context.
func (a *Assistant) Advice(ctx context.Context, query, ledgerContext string, lang core.Language) (string, error) {
	if !a.Available() {
		return fallback(lang), nil
	}
	out, err := a.gen.Generate(ctx, Request{Text: advicePrompt(query, ledgerContext, lang)})
	if err != nil {
		return "", fmt.Errorf("advice: %w", err)
	}
	return out, nil
}

// LegislativeUpdates summarizes current legislative changes relevant to
// Czech associations.
func (a *Assistant) LegislativeUpdates(ctx context.Context, lang core.Language) (string, error) {
	if !a.Available() {
		return fallback(lang), nil
	}
	out, err := a.gen.Generate(ctx, Request{Text: updatesPrompt(lang)})
	if err != nil {
		return "", fmt.Errorf("legislative updates: %w", err)
	}
	return out, nil
}

// MeetingMinutes drafts formal meeting-minutes text.
func (a *Assistant) MeetingMinutes(ctx context.Context, req MinutesRequest, lang core.Language) (string, error) {
	if !a.Available() {
		return fallback(lang), nil
	}
	out, err := a.gen.Generate(ctx, Request{Text: minutesPrompt(req)})
	if err != nil {
		return "", fmt.Errorf("meeting minutes: %w", err)
	}
	return out, nil
}

// Reply answers the in-app chat widget, optionally with an attached
// screenshot.
func (a *Assistant) Reply(ctx context.Context, message, view string, image *Blob, lang core.Language) (string, error) {
	if !a.Available() {
		return fallback(lang), nil
	}
	out, err := a.gen.Generate(ctx, Request{
		System: replySystem(view, lang),
		Text:   message,
		Blob:   image,
	})
	if err != nil {
		return "", fmt.Errorf("assistant reply: %w", err)
	}
	return out, nil
}

// LedgerContext renders the figures the advisor receives as context.
func LedgerContext(totalIncome, totalExpense int64, count int, lang core.Language) string {
	income := strconv.FormatInt(totalIncome/100, 10)
	expense := strconv.FormatInt(totalExpense/100, 10)
	if lang == core.English {
		return fmt.Sprintf("Current accounting status: income %s CZK, expenses %s CZK, %d transactions.", income, expense, count)
	}
	return fmt.Sprintf("Aktuální stav účetnictví: příjmy %s Kč, výdaje %s Kč, počet transakcí %d.", income, expense, count)
}
