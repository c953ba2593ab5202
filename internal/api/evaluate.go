package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"manjai/server/internal/models"
	"manjai/server/internal/narrative"
	"manjai/server/internal/report"
)

// EvaluateProperty asks the AI service for a narrative appraisal and
// echoes the property data back for report generation.
func (h *Handler) EvaluateProperty(c *gin.Context) {
	var req models.EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse evaluation request")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ข้อมูลไม่ถูกต้อง"})
		return
	}

	evaluation, err := h.narrative.Evaluate(&req)
	if errors.Is(err, narrative.ErrUnavailable) {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("AI evaluation failed")
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"evaluation": evaluation,
		"property_data": models.PropertyData{
			PropertyType: req.PropertyType,
			Location:     req.Location,
			Area:         req.Area,
			Bedrooms:     req.Bedrooms,
			Bathrooms:    req.Bathrooms,
			Age:          req.Age,
			Condition:    req.Condition,
		},
	})
}

// CheckOllama reports whether the AI service is reachable and which
// models it serves.
func (h *Handler) CheckOllama(c *gin.Context) {
	modelNames, err := h.narrative.CheckHealth()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success":   false,
			"connected": false,
			"error":     err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"connected": true,
		"models":    modelNames,
	})
}

// DownloadPDF renders the evaluation report as a PDF attachment.
func (h *Handler) DownloadPDF(c *gin.Context) {
	var req struct {
		PropertyData *models.PropertyData `json:"property_data"`
		Evaluation   string               `json:"evaluation"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse PDF request")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ข้อมูลไม่ถูกต้อง"})
		return
	}
	if req.PropertyData == nil || req.Evaluation == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ข้อมูลไม่ครบถ้วน"})
		return
	}

	buf, err := h.report.Build(req.PropertyData, req.Evaluation)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate PDF report")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+report.Filename(time.Now()))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
