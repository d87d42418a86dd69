// Package catalog turns the published spreadsheet feed into devices and keeps
// the current snapshot for readers.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"tradeup/internal/domain"
)

var ErrMissingColumn = errors.New("feed is missing a required column")

var headerAliases = map[string]string{
	"os":               "os",
	"operating system": "os",
	"platform":         "os",
	"brand":            "brand",
	"make":             "brand",
	"model":            "model",
	"storage":          "storage",
	"capacity":         "storage",
	"color":            "color",
	"colour":           "color",
	"condition":        "condition",
	"grade":            "condition",
	"price":            "price",
	"price (usd)":      "price",
}

var requiredColumns = []string{"brand", "model", "price"}

// ParseResult holds the parsed devices plus how many rows were dropped.
type ParseResult struct {
	Devices []domain.Device
	Skipped int
}

// Parse reads a comma-separated feed with a header row. Rows without a brand,
// a model or a parseable non-negative price are skipped, not rejected.
func Parse(r io.Reader) (ParseResult, error) {
	var out ParseResult
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return out, fmt.Errorf("%w: empty feed", ErrMissingColumn)
	}
	if err != nil {
		return out, fmt.Errorf("read feed header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if canon, ok := headerAliases[name]; ok {
			if _, dup := cols[canon]; !dup {
				cols[canon] = i
			}
		}
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return out, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				out.Skipped++
				continue
			}
			return out, fmt.Errorf("read feed: %w", err)
		}
		price, ok := ParsePrice(field(rec, "price"))
		dev := domain.Device{
			OS:        field(rec, "os"),
			Brand:     field(rec, "brand"),
			Model:     field(rec, "model"),
			Storage:   field(rec, "storage"),
			Color:     field(rec, "color"),
			Condition: field(rec, "condition"),
			Price:     price,
		}
		if !ok || dev.Brand == "" || dev.Model == "" {
			out.Skipped++
			continue
		}
		out.Devices = append(out.Devices, dev)
	}
	return out, nil
}

// ParsePrice accepts values like "1,299.00", "$999" or " 450 ".
func ParsePrice(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "US")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil || v.IsNegative() {
		return decimal.Zero, false
	}
	return v, true
}
