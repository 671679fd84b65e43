package coinvest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/coinvest/date"
	"github.com/shopspring/decimal"
)

// this file contains functions to import and export external price series.
// A price series has exactly two fields: 'date' and 'price', case is ignored.

// ErrMalformedInput is the root of every MalformedInputError.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError reports an external input that cannot be used at all.
type MalformedInputError struct {
	Line   int // 1-based, 0 when the whole input is concerned
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("malformed price series: %s", e.Reason)
	}
	return fmt.Sprintf("malformed price series on line %d: %s", e.Line, e.Reason)
}

func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }

func malformed(line int, format string, args ...any) error {
	return &MalformedInputError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// parsePoint parses the raw date and price fields of a single point.
func parsePoint(line int, rawDate, rawPrice string) (Anchor, error) {
	on, err := date.Parse(rawDate)
	if err != nil {
		return Anchor{}, malformed(line, "%v", err)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(rawPrice))
	if err != nil {
		return Anchor{}, malformed(line, "invalid price %q: %v", rawPrice, err)
	}
	return Anchor{On: on, Price: price}, nil
}

// ImportPricesCSV reads a price series from a CSV file with a header line.
//
// The header must contain a 'date' and a 'price' column, other columns are ignored.
func ImportPricesCSV(r io.Reader) (PriceSeries, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return PriceSeries{}, malformed(0, "empty input")
	}
	if err != nil {
		return PriceSeries{}, malformed(1, "%v", err)
	}
	dateCol, priceCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateCol = i
		case "price":
			priceCol = i
		}
	}
	if dateCol < 0 || priceCol < 0 {
		return PriceSeries{}, malformed(1, "CSV must have 'date' and 'price' columns, got %q", header)
	}

	var points []Anchor
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return PriceSeries{}, malformed(line, "%v", err)
		}
		if len(record) <= max(dateCol, priceCol) {
			return PriceSeries{}, malformed(line, "missing 'date' or 'price' value")
		}
		p, err := parsePoint(line, record[dateCol], record[priceCol])
		if err != nil {
			return PriceSeries{}, err
		}
		points = append(points, p)
	}
	if len(points) == 0 {
		return PriceSeries{}, malformed(0, "no price point")
	}
	return NewPriceSeries(points...), nil
}

// ImportPricesJSONL reads a price series from a JSONL stream, one {"date": ..., "price": ...} object per line.
func ImportPricesJSONL(r io.Reader) (PriceSeries, error) {
	var points []Anchor
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		if len(strings.TrimSpace(scanner.Text())) == 0 {
			continue
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(scanner.Bytes(), &fields); err != nil {
			return PriceSeries{}, malformed(line, "%v", err)
		}
		var rawDate, rawPrice json.RawMessage
		for k, v := range fields {
			switch strings.ToLower(k) {
			case "date":
				rawDate = v
			case "price":
				rawPrice = v
			}
		}
		if rawDate == nil || rawPrice == nil {
			return PriceSeries{}, malformed(line, "object must have 'date' and 'price' fields")
		}
		var on date.Date
		if err := json.Unmarshal(rawDate, &on); err != nil || on.IsZero() {
			return PriceSeries{}, malformed(line, "invalid date %s", rawDate)
		}
		// prices can be either json numbers or strings, decimal accepts both but reads null as zero.
		var price decimal.Decimal
		if string(bytes.TrimSpace(rawPrice)) == "null" {
			return PriceSeries{}, malformed(line, "invalid price null")
		}
		if err := json.Unmarshal(rawPrice, &price); err != nil {
			return PriceSeries{}, malformed(line, "invalid price %s: %v", rawPrice, err)
		}
		points = append(points, Anchor{On: on, Price: price})
	}
	if err := scanner.Err(); err != nil {
		return PriceSeries{}, fmt.Errorf("cannot read price series: %w", err)
	}
	if len(points) == 0 {
		return PriceSeries{}, malformed(0, "no price point")
	}
	return NewPriceSeries(points...), nil
}

// ExportPricesCSV writes the native points of the series as CSV with a 'date,price' header.
func ExportPricesCSV(w io.Writer, s PriceSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "price"}); err != nil {
		return fmt.Errorf("cannot write price series: %w", err)
	}
	for on, price := range s.Values() {
		if err := cw.Write([]string{on.String(), price.String()}); err != nil {
			return fmt.Errorf("cannot write price series: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
