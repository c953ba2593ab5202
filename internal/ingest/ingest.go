package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"manjai/server/internal/pricing"
)

// RequiredColumns are the column headers an upload must carry. The
// match is exact and case-sensitive, mirroring the upload template.
var RequiredColumns = []string{"province", "property_type", "base_price_per_sqm"}

// MissingColumnsError rejects a whole batch before any row is applied.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("ขาด columns: %s", strings.Join(e.Missing, ", "))
}

// RowError records a single failed row. Row is the spreadsheet row
// number as a user would see it (header is row 1, first data row is 2).
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("แถว %d: %s", e.Row, e.Message)
}

// Result summarizes an ingestion batch.
type Result struct {
	UpdatedCount int
	RowErrors    []RowError
}

// Adapter validates tabular price data and applies it to the override
// store. Bad rows are skipped and reported; they never abort the batch.
type Adapter struct {
	store  pricing.OverrideStore
	logger *logrus.Logger
}

func NewAdapter(store pricing.OverrideStore, logger *logrus.Logger) *Adapter {
	return &Adapter{store: store, logger: logger}
}

// Ingest applies the given rows to the store. header names the columns
// of each row. Missing required columns fail the whole batch before any
// upsert; per-row parse failures are collected in the result and the
// remaining rows still apply.
//
// Province and property type values are stored as uploaded. Values
// unknown to the reference tables are inert: they sit in the store but
// never match an estimate lookup.
func (a *Adapter) Ingest(header []string, rows [][]string) (*Result, error) {
	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for i, row := range rows {
		// Spreadsheet row number: header row is 1.
		rowNum := i + 2

		province := strings.TrimSpace(cell(row, index["province"]))
		propertyType := strings.TrimSpace(cell(row, index["property_type"]))
		rawPrice := strings.TrimSpace(cell(row, index["base_price_per_sqm"]))

		price, err := strconv.ParseFloat(rawPrice, 64)
		if err != nil {
			result.RowErrors = append(result.RowErrors, RowError{
				Row:     rowNum,
				Message: fmt.Sprintf("ราคาไม่ใช่ตัวเลข: %q", rawPrice),
			})
			continue
		}

		if err := a.store.Upsert(province, propertyType, price); err != nil {
			result.RowErrors = append(result.RowErrors, RowError{
				Row:     rowNum,
				Message: err.Error(),
			})
			continue
		}

		result.UpdatedCount++
	}

	a.logger.WithFields(logrus.Fields{
		"updated": result.UpdatedCount,
		"errors":  len(result.RowErrors),
	}).Info("Ingested price override batch")

	return result, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, required := range RequiredColumns {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}
	return index, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
