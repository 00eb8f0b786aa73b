package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civiclens/civiclens-backend/internal/http/response"
	"github.com/civiclens/civiclens-backend/internal/pkg/apperr"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
	"github.com/civiclens/civiclens-backend/internal/reports"
	"github.com/civiclens/civiclens-backend/internal/validate"
)

type ReportHandler struct {
	reports *reports.Service
	log     *logger.Logger
}

func NewReportHandler(reports *reports.Service, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		log:     log.With("handler", "ReportHandler"),
	}
}

// POST /api/reports/submit
// body: { "complaint_id": "c7-42" }
func (h *ReportHandler) Submit(c *gin.Context) {
	if !hasJSONContentType(c) {
		response.Error(c, apperr.New(apperr.KindBadContentType, "Invalid Content-Type. Expected application/json"))
		return
	}
	var req struct {
		ComplaintID *string `json:"complaint_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.New(apperr.KindValidation, "Invalid JSON body"))
		return
	}
	if req.ComplaintID == nil {
		response.Error(c, validate.Required("complaint_id", "string"))
		return
	}

	res, err := h.reports.Submit(c.Request.Context(), *req.ComplaintID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"message":  "Report generated and submitted successfully.",
		"reportId": res.ReportID,
		"pdfHash":  res.PDFHash,
	})
}

// GET /api/reports/download/:id
//
// Regenerates the document and streams it inline; nothing is stored or
// persisted on this path.
func (h *ReportHandler) Download(c *gin.Context) {
	filename, pdf, err := h.reports.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
