package coinvest

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestImportPricesCSV(t *testing.T) {
	input := "Date,Source,PRICE\n2025-01-01,broker,100\n2025-1-11,broker,200\n"
	s, err := ImportPricesCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ImportPricesCSV() error = %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if got := s.PriceAt(day("2025-01-06")); !got.Equal(AED(150)) {
		t.Errorf("PriceAt(2025-01-06) = %v, want 150", got)
	}
}

func TestImportPricesCSV_Malformed(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"empty", "", 0},
		{"no price column", "date,value\n2025-01-01,100\n", 1},
		{"no points", "date,price\n", 0},
		{"bad date", "date,price\n2025-01-01,100\nyesterday,100\n", 3},
		{"bad price", "date,price\n2025-01-01,lots\n", 2},
		{"short row", "date,price\n2025-01-01\n", 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ImportPricesCSV(strings.NewReader(tc.input))
			if !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("ImportPricesCSV() error = %v, want ErrMalformedInput", err)
			}
			var merr *MalformedInputError
			if !errors.As(err, &merr) {
				t.Fatalf("ImportPricesCSV() error = %T, want *MalformedInputError", err)
			}
			if merr.Line != tc.wantLine {
				t.Errorf("Line = %d, want %d", merr.Line, tc.wantLine)
			}
		})
	}
}

func TestImportPricesJSONL(t *testing.T) {
	input := `{"date":"2025-01-01","price":100}

{"Date":"2025-01-11","Price":"200"}
`
	s, err := ImportPricesJSONL(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ImportPricesJSONL() error = %v", err)
	}
	if got := s.PriceAt(day("2025-01-06")); !got.Equal(AED(150)) {
		t.Errorf("PriceAt(2025-01-06) = %v, want 150", got)
	}

	_, err = ImportPricesJSONL(strings.NewReader(`{"date":"2025-01-01"}`))
	var merr *MalformedInputError
	if !errors.As(err, &merr) || merr.Line != 1 {
		t.Errorf("ImportPricesJSONL(missing price) error = %v, want a malformed input on line 1", err)
	}
}

func TestImportPricesJSONL_Malformed(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"null price", `{"date":"2025-01-01","price":null}`, 1},
		{"escaped price", `{"date":"2025-01-01","price":"\"100\""}`, 1},
		{"word price", "{\"date\":\"2025-01-01\",\"price\":100}\n{\"date\":\"2025-01-02\",\"price\":\"lots\"}", 2},
		{"null date", `{"date":null,"price":100}`, 1},
		{"object price", `{"date":"2025-01-01","price":{"value":100}}`, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ImportPricesJSONL(strings.NewReader(tc.input))
			var merr *MalformedInputError
			if !errors.As(err, &merr) {
				t.Fatalf("ImportPricesJSONL() error = %v, want *MalformedInputError", err)
			}
			if merr.Line != tc.wantLine {
				t.Errorf("Line = %d, want %d", merr.Line, tc.wantLine)
			}
		})
	}
}

func TestExportPricesCSV(t *testing.T) {
	s := NewPriceSeries(
		Anchor{On: day("2025-01-01"), Price: AED(100)},
		Anchor{On: day("2025-01-11"), Price: AED(200)},
	)
	var buf bytes.Buffer
	if err := ExportPricesCSV(&buf, s); err != nil {
		t.Fatalf("ExportPricesCSV() error = %v", err)
	}
	want := "date,price\n2025-01-01,100\n2025-01-11,200\n"
	if got := buf.String(); got != want {
		t.Errorf("ExportPricesCSV() = %q, want %q", got, want)
	}

	back, err := ImportPricesCSV(&buf)
	if err != nil {
		t.Fatalf("ImportPricesCSV() error = %v", err)
	}
	if back.Len() != 2 || !back.PriceAt(day("2025-01-11")).Equal(AED(200)) {
		t.Errorf("ImportPricesCSV(export) lost points")
	}
}
