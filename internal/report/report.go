package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/sirupsen/logrus"

	"manjai/server/internal/models"
)

// Assembler renders an evaluation report: the AI narrative followed by
// the property details, laid out on A4 with Thai fonts when available.
type Assembler struct {
	logger  *logrus.Logger
	fontDir string
}

func NewAssembler(logger *logrus.Logger, fontDir string) *Assembler {
	return &Assembler{logger: logger, fontDir: fontDir}
}

// propertyLabels maps PropertyData fields to their report labels in
// render order.
var propertyLabels = []struct {
	label string
	value func(*models.PropertyData) string
}{
	{"ประเภททรัพย์สิน", func(d *models.PropertyData) string { return d.PropertyType }},
	{"ทำเลที่ตั้ง", func(d *models.PropertyData) string { return d.Location }},
	{"ขนาดพื้นที่ (ตร.ม.)", func(d *models.PropertyData) string { return d.Area }},
	{"จำนวนห้องนอน", func(d *models.PropertyData) string { return d.Bedrooms }},
	{"จำนวนห้องน้ำ", func(d *models.PropertyData) string { return d.Bathrooms }},
	{"อายุอาคาร (ปี)", func(d *models.PropertyData) string { return d.Age }},
	{"สภาพทรัพย์สิน", func(d *models.PropertyData) string { return d.Condition }},
}

// Filename returns the attachment name for a report generated now.
func Filename(now time.Time) string {
	return fmt.Sprintf("property_evaluation_%s.pdf", now.Format("20060102_150405"))
}

// Build assembles the PDF document into a buffer.
func (a *Assembler) Build(data *models.PropertyData, narrative string) (*bytes.Buffer, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)

	font, boldFont := a.registerFonts(pdf)

	pdf.AddPage()

	pdf.SetFont(boldFont, "", 22)
	pdf.MultiCell(0, 12, "รายงานผลการประเมินราคาอสังหาริมทรัพย์", "", "C", false)
	pdf.Ln(6)

	pdf.SetFont(boldFont, "", 15)
	pdf.MultiCell(0, 9, "ผลการประเมินโดย AI", "", "L", false)
	pdf.SetFont(font, "", 12)
	pdf.MultiCell(0, 7, narrative, "", "L", false)
	pdf.Ln(6)

	pdf.SetFont(boldFont, "", 15)
	pdf.MultiCell(0, 9, "ข้อมูลทรัพย์สิน", "", "L", false)
	pdf.SetFont(font, "", 12)
	for _, field := range propertyLabels {
		pdf.MultiCell(0, 7, fmt.Sprintf("%s: %s", field.label, field.value(data)), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %v", err)
	}
	return &buf, nil
}

// registerFonts loads the Thai Sarabun fonts when present under the
// configured font directory, falling back to the built-in Helvetica so
// report generation still works without the font assets.
func (a *Assembler) registerFonts(pdf *fpdf.Fpdf) (string, string) {
	regular := filepath.Join(a.fontDir, "THSarabunNew.ttf")
	bold := filepath.Join(a.fontDir, "THSarabunNew-Bold.ttf")

	if fileExists(regular) && fileExists(bold) {
		pdf.AddUTF8Font("THSarabun", "", regular)
		pdf.AddUTF8Font("THSarabun-Bold", "", bold)
		return "THSarabun", "THSarabun-Bold"
	}

	a.logger.WithField("font_dir", a.fontDir).Warn("Thai fonts not found, falling back to Helvetica")
	return "Helvetica", "Helvetica"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
