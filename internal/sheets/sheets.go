package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// Appender appends tracker rows to a Google Sheets spreadsheet. Credential
// handling is delegated to the Google client libraries; with no credentials
// file configured, application default credentials apply.
type Appender struct {
	svc *sheets.Service
}

func NewAppender(ctx context.Context, credentialsFile string) (*Appender, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Appender{svc: svc}, nil
}

// Append adds one row after the last row of the spreadsheet's first sheet.
func (a *Appender) Append(ctx context.Context, spreadsheetID string, row []string) error {
	cells := make([]any, len(row))
	for i, cell := range row {
		cells[i] = cell
	}

	_, err := a.svc.Spreadsheets.Values.
		Append(spreadsheetID, "A1", &sheets.ValueRange{Values: [][]any{cells}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to spreadsheet %s: %w", spreadsheetID, err)
	}
	return nil
}
