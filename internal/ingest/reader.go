package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MaxUploadBytes caps accepted spreadsheet uploads at 16 MiB.
const MaxUploadBytes = 16 * 1024 * 1024

var (
	ErrUnsupportedFile = errors.New("รองรับเฉพาะไฟล์ .xlsx, .xls, .csv เท่านั้น")
	ErrEmptyFile       = errors.New("ไฟล์ไม่มีข้อมูล")
	ErrFileTooLarge    = fmt.Errorf("ไฟล์ใหญ่เกิน %d MB", MaxUploadBytes/(1024*1024))
)

// AllowedExtension reports whether the filename carries an accepted
// spreadsheet extension.
func AllowedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls", ".csv":
		return true
	}
	return false
}

// ReadRows parses an uploaded spreadsheet into a header row and data
// rows. The format is picked from the filename extension.
func ReadRows(filename string, r io.Reader) ([]string, [][]string, error) {
	if !AllowedExtension(filename) {
		return nil, nil, ErrUnsupportedFile
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, nil, fmt.Errorf("ไม่สามารถอ่านไฟล์ได้: %w", err)
	}
	if int64(len(data)) > MaxUploadBytes {
		return nil, nil, ErrFileTooLarge
	}

	var rows [][]string
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		rows, err = readCSV(data)
	} else {
		rows, err = readExcel(data)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("ไม่สามารถอ่านไฟล์ได้: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil, ErrEmptyFile
	}
	return rows[0], rows[1:], nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func readExcel(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	return f.GetRows(sheets[0])
}
