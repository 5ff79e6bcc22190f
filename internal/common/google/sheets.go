// internal/common/google/sheets.go
package google

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ValueInputRaw stores values exactly as given, without formula or date parsing.
const ValueInputRaw = "RAW"

// NewSheet describes a tab to add in a batch structural update. A nil Index
// appends the tab after the existing ones.
type NewSheet struct {
	Title string
	Index *int64
}

// Spreadsheet is the subset of the Sheets API the pipeline uses, bound to one
// spreadsheet.
type Spreadsheet interface {
	SheetTitles(ctx context.Context) ([]string, error)
	AddSheets(ctx context.Context, tabs []NewSheet) error
	GetValues(ctx context.Context, rng string) ([][]interface{}, error)
	UpdateValues(ctx context.Context, rng string, rows [][]interface{}) error
	AppendValues(ctx context.Context, rng string, rows [][]interface{}) error
}

// SheetsClient implements Spreadsheet on top of sheets/v4.
type SheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
}

func NewSheetsClient(ctx context.Context, httpClient *http.Client, spreadsheetID string, opts ...option.ClientOption) (*SheetsClient, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &SheetsClient{service: svc, spreadsheetID: spreadsheetID}, nil
}

func (c *SheetsClient) SheetTitles(ctx context.Context) ([]string, error) {
	meta, err := c.service.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(meta.Sheets))
	for _, s := range meta.Sheets {
		if s.Properties != nil && s.Properties.Title != "" {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

func (c *SheetsClient) AddSheets(ctx context.Context, tabs []NewSheet) error {
	if len(tabs) == 0 {
		return nil
	}
	requests := make([]*sheets.Request, 0, len(tabs))
	for _, tab := range tabs {
		props := &sheets.SheetProperties{Title: tab.Title}
		if tab.Index != nil {
			props.Index = *tab.Index
			// Index 0 is the zero value and would otherwise be dropped.
			props.ForceSendFields = []string{"Index"}
		}
		requests = append(requests, &sheets.Request{
			AddSheet: &sheets.AddSheetRequest{Properties: props},
		})
	}
	_, err := c.service.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	return err
}

func (c *SheetsClient) GetValues(ctx context.Context, rng string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (c *SheetsClient) UpdateValues(ctx context.Context, rng string, rows [][]interface{}) error {
	_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, rng, &sheets.ValueRange{Values: rows}).
		ValueInputOption(ValueInputRaw).
		Context(ctx).
		Do()
	return err
}

func (c *SheetsClient) AppendValues(ctx context.Context, rng string, rows [][]interface{}) error {
	_, err := c.service.Spreadsheets.Values.Append(c.spreadsheetID, rng, &sheets.ValueRange{Values: rows}).
		ValueInputOption(ValueInputRaw).
		Context(ctx).
		Do()
	return err
}

// ColumnLetter converts a 1-based column number to its A1 letters (1 → A, 27 → AA).
func ColumnLetter(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

// A1 builds an A1-notation range on a tab, quoting the title so spaces and
// non-ASCII names are addressed correctly.
func A1(title, cells string) string {
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(title, "'", "''"), cells)
}
