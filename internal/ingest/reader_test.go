package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedExtension(t *testing.T) {
	tests := []struct {
		filename string
		allowed  bool
	}{
		{"prices.xlsx", true},
		{"prices.xls", true},
		{"prices.csv", true},
		{"PRICES.XLSX", true},
		{"prices.pdf", false},
		{"prices.txt", false},
		{"prices", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.allowed, AllowedExtension(tt.filename))
		})
	}
}

func TestReadRowsCSV(t *testing.T) {
	csvData := "province,property_type,base_price_per_sqm\nภูเก็ต,คอนโด,70000\nเชียงใหม่,บ้านเดี่ยว,45000\n"

	header, rows, err := ReadRows("prices.csv", strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, []string{"province", "property_type", "base_price_per_sqm"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ภูเก็ต", "คอนโด", "70000"}, rows[0])
}

func TestReadRowsRejectsUnsupportedExtension(t *testing.T) {
	_, _, err := ReadRows("prices.pdf", strings.NewReader("data"))
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestReadRowsRejectsEmptyFile(t *testing.T) {
	_, _, err := ReadRows("prices.csv", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestReadRowsRejectsCorruptExcel(t *testing.T) {
	_, _, err := ReadRows("prices.xlsx", strings.NewReader("this is not a spreadsheet"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFile)
}

func TestTemplateRoundTrip(t *testing.T) {
	buf, err := WriteTemplate()
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	header, rows, err := ReadRows(TemplateFilename, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, RequiredColumns, header)
	require.Len(t, rows, 3, "template ships three example rows")
	assert.Equal(t, "กรุงเทพมหานคร", rows[0][0])
	assert.Equal(t, "คอนโด", rows[0][1])
	assert.Equal(t, "80000", rows[0][2])
	assert.Equal(t, "ภูเก็ต", rows[2][0])
}

func TestTemplateIngests(t *testing.T) {
	buf, err := WriteTemplate()
	require.NoError(t, err)

	header, rows, err := ReadRows(TemplateFilename, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	adapter, store := newTestAdapter()
	result, err := adapter.Ingest(header, rows)
	require.NoError(t, err)
	assert.Equal(t, 3, result.UpdatedCount)
	assert.Empty(t, result.RowErrors)
	assert.Equal(t, 3, store.Len())
}
