package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/civiclens/civiclens-backend/internal/http/response"
	"github.com/civiclens/civiclens-backend/internal/pkg/apperr"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
	"github.com/civiclens/civiclens-backend/internal/services"
	"github.com/civiclens/civiclens-backend/internal/validate"
)

type WorkflowHandler struct {
	workflow services.WorkflowService
	log      *logger.Logger
}

func NewWorkflowHandler(workflow services.WorkflowService, log *logger.Logger) *WorkflowHandler {
	return &WorkflowHandler{
		workflow: workflow,
		log:      log.With("handler", "WorkflowHandler"),
	}
}

// PATCH /api/complaints/:id/status
// body: { "status": "...", "remarks": "..." }
func (h *WorkflowHandler) UpdateStatus(c *gin.Context) {
	if !hasJSONContentType(c) {
		response.Error(c, apperr.New(apperr.KindBadContentType, "Invalid Content-Type. Expected application/json"))
		return
	}
	var req struct {
		Status  *string `json:"status"`
		Remarks *string `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.New(apperr.KindValidation, "Invalid JSON body"))
		return
	}
	if req.Status == nil {
		response.Error(c, validate.Required("status", "string"))
		return
	}

	view, err := h.workflow.UpdateStatus(c.Request.Context(), c.Param("id"), *req.Status, req.Remarks)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"message": "Status updated successfully",
		"data":    view,
	})
}

// POST /api/remarks
// body: { "summary_id": 42, "manager_status": "Drafted", "remarks": "..." }
func (h *WorkflowHandler) UpdateRemarks(c *gin.Context) {
	if !hasJSONContentType(c) {
		response.Error(c, apperr.New(apperr.KindBadContentType, "Invalid Content-Type. Expected application/json"))
		return
	}
	var req struct {
		SummaryID     *int    `json:"summary_id"`
		ManagerStatus *string `json:"manager_status"`
		Remarks       *string `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.New(apperr.KindValidation, "Invalid JSON body"))
		return
	}
	if req.SummaryID == nil {
		response.Error(c, validate.Required("summary_id", "number"))
		return
	}
	if req.ManagerStatus == nil {
		response.Error(c, validate.Required("manager_status", "string"))
		return
	}

	view, err := h.workflow.UpdateRemarks(c.Request.Context(), *req.SummaryID, *req.ManagerStatus, req.Remarks)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"message": "Remarks updated successfully",
		"data":    view,
	})
}

// GET /api/remarks?summary_id=42
func (h *WorkflowHandler) GetRemarks(c *gin.Context) {
	if err := validate.QueryParams(c.Request.URL.Query(), "summary_id"); err != nil {
		response.Error(c, err)
		return
	}
	raw := c.Query("summary_id")
	if raw == "" {
		response.Error(c, apperr.New(apperr.KindValidation, "summary_id query parameter is required"))
		return
	}
	summaryID, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, apperr.New(apperr.KindValidation, "summary_id must be a valid number"))
		return
	}

	view, err := h.workflow.GetRemarks(c.Request.Context(), summaryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"data": view})
}

// PATCH /api/pdf-status
// body: { "summary_id": 42, "pdf_status": "Generated", "pdf_path": "..." }
func (h *WorkflowHandler) UpdatePDFStatus(c *gin.Context) {
	if !hasJSONContentType(c) {
		response.Error(c, apperr.New(apperr.KindBadContentType, "Invalid Content-Type. Expected application/json"))
		return
	}
	var req struct {
		SummaryID *int    `json:"summary_id"`
		PDFStatus *string `json:"pdf_status"`
		PDFPath   *string `json:"pdf_path"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.New(apperr.KindValidation, "Invalid JSON body"))
		return
	}
	if req.SummaryID == nil {
		response.Error(c, validate.Required("summary_id", "number"))
		return
	}
	if req.PDFStatus == nil {
		response.Error(c, validate.Required("pdf_status", "string"))
		return
	}

	view, err := h.workflow.UpdatePDFStatus(c.Request.Context(), *req.SummaryID, *req.PDFStatus, req.PDFPath)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"message": "PDF status updated successfully",
		"data":    view,
	})
}

// PATCH /api/supervisor-verify
// body: { "summary_id": 42, "verified": true }
func (h *WorkflowHandler) UpdateVerification(c *gin.Context) {
	if !hasJSONContentType(c) {
		response.Error(c, apperr.New(apperr.KindBadContentType, "Invalid Content-Type. Expected application/json"))
		return
	}
	var req struct {
		SummaryID *int  `json:"summary_id"`
		Verified  *bool `json:"verified"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.New(apperr.KindValidation, "Invalid JSON body"))
		return
	}
	if req.SummaryID == nil {
		response.Error(c, validate.Required("summary_id", "number"))
		return
	}
	if req.Verified == nil {
		response.Error(c, validate.Required("verified", "boolean"))
		return
	}

	view, err := h.workflow.UpdateVerification(c.Request.Context(), *req.SummaryID, *req.Verified)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"message": "Verification updated successfully",
		"data":    view,
	})
}
