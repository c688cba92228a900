package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"spolek/internal/report"
)

// SheetsClient pushes report snapshots to a Google spreadsheet. It is an
// optional sink: when no spreadsheet is configured the constructor returns
// nil and callers skip the push.
type SheetsClient struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheet         string
}

// NewSheetsFromEnv creates a Sheets client from environment variables.
// Required: GOOGLE_SPREADSHEET_ID (absence disables the sink, not an error).
// Auth: GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE or
// GOOGLE_APPLICATION_CREDENTIALS. Optional: GOOGLE_SHEET_NAME (default
// "Snapshots").
func NewSheetsFromEnv(ctx context.Context) (*SheetsClient, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, nil
	}

	sheet := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_NAME"))
	if sheet == "" {
		sheet = "Snapshots"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &SheetsClient{svc: svc, spreadsheetID: spreadsheetID, sheet: sheet}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	inline := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	file := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if inline == "" && file == "" {
		file = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentials []byte
	switch {
	case inline != "":
		credentials = []byte(inline)
	case file != "":
		var err error
		credentials, err = os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentials),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}

// AppendSnapshot appends one summary row: timestamp, income, expenses,
// balance and estimated tax in CZK.
func (c *SheetsClient) AppendSnapshot(ctx context.Context, s report.Summary) error {
	if c == nil {
		return nil
	}
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}

	row := []any{
		time.Now().Format(time.RFC3339),
		float64(s.TotalIncome) / 100,
		float64(s.TotalExpense) / 100,
		float64(s.Balance) / 100,
		float64(s.EstimatedTax) / 100,
	}
	rng := fmt.Sprintf("%s!A:E", c.sheet)
	vr := &gsheet.ValueRange{Values: [][]any{row}}

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append snapshot to %s: %w", c.sheet, err)
	}
	return nil
}
