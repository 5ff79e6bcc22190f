// Package testutil holds in-memory stand-ins for the external services the
// intake pipeline talks to.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"ayurveda-intake/internal/common/google"
)

// SpreadsheetCall records one request made against a FakeSpreadsheet.
type SpreadsheetCall struct {
	Op    string
	Range string
	Rows  [][]interface{}
	Tabs  []google.NewSheet
}

// FakeSpreadsheet is an in-memory google.Spreadsheet. Tabs are kept in display
// order; values are stored per tab from row 1.
type FakeSpreadsheet struct {
	mu     sync.Mutex
	tabs   []string
	values map[string][][]interface{}
	calls  []SpreadsheetCall

	// Errors makes the named operation fail ("SheetTitles", "AddSheets",
	// "GetValues", "UpdateValues", "AppendValues").
	Errors map[string]error
}

func NewFakeSpreadsheet(tabs ...string) *FakeSpreadsheet {
	return &FakeSpreadsheet{
		tabs:   append([]string(nil), tabs...),
		values: map[string][][]interface{}{},
		Errors: map[string]error{},
	}
}

var _ google.Spreadsheet = (*FakeSpreadsheet)(nil)

func (f *FakeSpreadsheet) SheetTitles(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, SpreadsheetCall{Op: "SheetTitles"})
	if err := f.Errors["SheetTitles"]; err != nil {
		return nil, err
	}
	return append([]string(nil), f.tabs...), nil
}

func (f *FakeSpreadsheet) AddSheets(ctx context.Context, tabs []google.NewSheet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, SpreadsheetCall{Op: "AddSheets", Tabs: append([]google.NewSheet(nil), tabs...)})
	if err := f.Errors["AddSheets"]; err != nil {
		return err
	}
	// The real batch update is atomic, so validate everything before applying.
	for _, tab := range tabs {
		if f.hasTab(tab.Title) {
			return fmt.Errorf("invalid requests[0].addSheet: a sheet with the name %q already exists", tab.Title)
		}
	}
	for _, tab := range tabs {
		if tab.Index != nil && int(*tab.Index) < len(f.tabs) {
			i := int(*tab.Index)
			f.tabs = append(f.tabs[:i], append([]string{tab.Title}, f.tabs[i:]...)...)
			continue
		}
		f.tabs = append(f.tabs, tab.Title)
	}
	return nil
}

func (f *FakeSpreadsheet) GetValues(ctx context.Context, rng string) ([][]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, SpreadsheetCall{Op: "GetValues", Range: rng})
	if err := f.Errors["GetValues"]; err != nil {
		return nil, err
	}
	title := TabOf(rng)
	if !f.hasTab(title) {
		return nil, fmt.Errorf("unable to parse range: %s", rng)
	}
	rows := f.values[title]
	if len(rows) == 0 {
		return nil, nil
	}
	// Only header reads (row 1) are issued by the pipeline.
	return [][]interface{}{append([]interface{}(nil), rows[0]...)}, nil
}

func (f *FakeSpreadsheet) UpdateValues(ctx context.Context, rng string, rows [][]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, SpreadsheetCall{Op: "UpdateValues", Range: rng, Rows: rows})
	if err := f.Errors["UpdateValues"]; err != nil {
		return err
	}
	title := TabOf(rng)
	if !f.hasTab(title) {
		return fmt.Errorf("unable to parse range: %s", rng)
	}
	existing := f.values[title]
	for i, row := range rows {
		if i < len(existing) {
			existing[i] = row
		} else {
			existing = append(existing, row)
		}
	}
	f.values[title] = existing
	return nil
}

func (f *FakeSpreadsheet) AppendValues(ctx context.Context, rng string, rows [][]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, SpreadsheetCall{Op: "AppendValues", Range: rng, Rows: rows})
	if err := f.Errors["AppendValues"]; err != nil {
		return err
	}
	title := TabOf(rng)
	if !f.hasTab(title) {
		return fmt.Errorf("unable to parse range: %s", rng)
	}
	f.values[title] = append(f.values[title], rows...)
	return nil
}

// Tabs returns the tab titles in display order.
func (f *FakeSpreadsheet) Tabs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tabs...)
}

// Rows returns every stored row of a tab, header included.
func (f *FakeSpreadsheet) Rows(title string) [][]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]interface{}(nil), f.values[title]...)
}

// SetRows replaces the content of a tab, creating it when missing.
func (f *FakeSpreadsheet) SetRows(title string, rows ...[]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.hasTab(title) {
		f.tabs = append(f.tabs, title)
	}
	f.values[title] = rows
}

func (f *FakeSpreadsheet) Calls() []SpreadsheetCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SpreadsheetCall(nil), f.calls...)
}

// CallsTo returns the recorded calls of one operation.
func (f *FakeSpreadsheet) CallsTo(op string) []SpreadsheetCall {
	var out []SpreadsheetCall
	for _, c := range f.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Writes counts mutating calls.
func (f *FakeSpreadsheet) Writes() int {
	n := 0
	for _, c := range f.Calls() {
		switch c.Op {
		case "AddSheets", "UpdateValues", "AppendValues":
			n++
		}
	}
	return n
}

func (f *FakeSpreadsheet) hasTab(title string) bool {
	for _, t := range f.tabs {
		if t == title {
			return true
		}
	}
	return false
}

// TabOf extracts the tab title from an A1 range such as 'raw_intake'!A:A.
func TabOf(rng string) string {
	i := strings.LastIndex(rng, "!")
	if i < 0 {
		return rng
	}
	title := rng[:i]
	if len(title) >= 2 && strings.HasPrefix(title, "'") && strings.HasSuffix(title, "'") {
		title = strings.ReplaceAll(title[1:len(title)-1], "''", "'")
	}
	return title
}

// Row converts strings into a sheet row.
func Row(values ...string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
