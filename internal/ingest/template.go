package ingest

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// TemplateFilename is the suggested download name for the upload
// template spreadsheet.
const TemplateFilename = "price_data_template.xlsx"

const templateSheet = "ข้อมูลราคา"

// templateRows are the example rows shipped in the upload template.
var templateRows = [][]interface{}{
	{"กรุงเทพมหานคร", "คอนโด", 80000},
	{"เชียงใหม่", "บ้านเดี่ยว", 45000},
	{"ภูเก็ต", "คอนโด", 70000},
}

// WriteTemplate builds the xlsx upload template: the required columns
// plus three example rows.
func WriteTemplate() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(templateSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(RequiredColumns))
	for i, col := range RequiredColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(templateSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range templateRows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(templateSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}
