package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"manjai/server/config"
	"manjai/server/internal/auth"
	"manjai/server/internal/ingest"
	"manjai/server/internal/models"
	"manjai/server/internal/narrative"
	"manjai/server/internal/pricing"
	"manjai/server/internal/report"
)

type Handler struct {
	logger    *logrus.Logger
	store     pricing.OverrideStore
	estimator *pricing.Estimator
	adapter   *ingest.Adapter
	narrative *narrative.Client
	report    *report.Assembler
	auth      *auth.Service
	maxUpload int64
}

// Deps carries the collaborators a Handler needs.
type Deps struct {
	Store     pricing.OverrideStore
	Narrative *narrative.Client
	Report    *report.Assembler
	Auth      *auth.Service
	MaxUpload int64
}

func NewHandler(deps Deps, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	maxUpload := deps.MaxUpload
	if maxUpload <= 0 {
		maxUpload = ingest.MaxUploadBytes
	}

	return &Handler{
		logger:    logger,
		store:     deps.Store,
		estimator: pricing.NewEstimator(deps.Store),
		adapter:   ingest.NewAdapter(deps.Store, logger),
		narrative: deps.Narrative,
		report:    deps.Report,
		auth:      deps.Auth,
		maxUpload: maxUpload,
	}
}

// GetProvinces returns the full province reference table ordered by
// name.
func (h *Handler) GetProvinces(c *gin.Context) {
	provinces := config.ProvincesSortedByName()
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"provinces": provinces,
		"total":     len(provinces),
	})
}

// QuickEstimate runs the deterministic price calculation.
func (h *Handler) QuickEstimate(c *gin.Context) {
	var req models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse estimate request")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "กรุณาระบุขนาดพื้นที่เป็นตัวเลข"})
		return
	}

	result, err := h.estimator.Estimate(req.PropertyType, req.Province, *req.Area)
	if errors.Is(err, pricing.ErrInvalidArea) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ขนาดพื้นที่ต้องเป็นตัวเลขที่ไม่ติดลบ"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to compute estimate")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	response := gin.H{
		"success":         true,
		"estimated_price": result.EstimatedPrice,
		"price_per_sqm":   result.PricePerSqm,
		"area":            result.Area,
		"province":        result.Province,
		"price_source":    result.PriceSource,
	}
	if result.Multiplier != nil {
		response["region"] = result.Region
		response["multiplier"] = *result.Multiplier
	}

	c.JSON(http.StatusOK, response)
}

// UploadPriceData ingests a price override spreadsheet. Admin only.
func (h *Handler) UploadPriceData(c *gin.Context) {
	if h.auth.RequireAdmin(c) == nil {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ไม่พบไฟล์ที่อัปโหลด"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ไม่ได้เลือกไฟล์"})
		return
	}
	if fileHeader.Size > h.maxUpload {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": ingest.ErrFileTooLarge.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": fmt.Sprintf("ไม่สามารถอ่านไฟล์ได้: %v", err)})
		return
	}
	defer file.Close()

	header, rows, err := ingest.ReadRows(fileHeader.Filename, file)
	if err != nil {
		h.logger.WithError(err).Error("Failed to read uploaded spreadsheet")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := h.adapter.Ingest(header, rows)
	var missing *ingest.MissingColumnsError
	if errors.As(err, &missing) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":          false,
			"error":            missing.Error(),
			"required_columns": ingest.RequiredColumns,
		})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to ingest price data")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	response := gin.H{
		"success":       true,
		"message":       fmt.Sprintf("อัปโหลดสำเร็จ %d รายการ", result.UpdatedCount),
		"updated_count": result.UpdatedCount,
		"total_records": h.store.Len(),
	}
	if len(result.RowErrors) > 0 {
		errs := make([]string, len(result.RowErrors))
		for i, rowErr := range result.RowErrors {
			errs[i] = rowErr.Error()
		}
		response["errors"] = errs
		response["error_count"] = len(errs)
	}

	c.JSON(http.StatusOK, response)
}

// GetPriceData lists all uploaded override entries.
func (h *Handler) GetPriceData(c *gin.Context) {
	overrides := h.store.List()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    overrides,
		"total":   len(overrides),
	})
}

// DownloadTemplate serves the xlsx upload template.
func (h *Handler) DownloadTemplate(c *gin.Context) {
	buf, err := ingest.WriteTemplate()
	if err != nil {
		h.logger.WithError(err).Error("Failed to build template spreadsheet")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ingest.TemplateFilename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
