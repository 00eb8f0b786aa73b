package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/civiclens/civiclens-backend/internal/domain"
	"github.com/civiclens/civiclens-backend/internal/http/response"
	"github.com/civiclens/civiclens-backend/internal/pkg/apperr"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
	"github.com/civiclens/civiclens-backend/internal/services"
	"github.com/civiclens/civiclens-backend/internal/validate"
)

type ComplaintHandler struct {
	complaints services.ComplaintService
	log        *logger.Logger
}

func NewComplaintHandler(complaints services.ComplaintService, log *logger.Logger) *ComplaintHandler {
	return &ComplaintHandler{
		complaints: complaints,
		log:        log.With("handler", "ComplaintHandler"),
	}
}

// POST /api/complaints
// body: { "raw_text": "...", "submitted_by": "..." }
func (h *ComplaintHandler) Submit(c *gin.Context) {
	if !hasJSONContentType(c) {
		response.Error(c, apperr.New(apperr.KindBadContentType, "Invalid Content-Type. Expected application/json"))
		return
	}

	// Pointer fields distinguish "absent" and "wrong type" from empty.
	var req struct {
		RawText     *string `json:"raw_text"`
		SubmittedBy *string `json:"submitted_by"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.New(apperr.KindValidation, "Invalid JSON body"))
		return
	}
	if req.RawText == nil {
		response.Error(c, validate.Required("Complaint description", "string"))
		return
	}
	if req.SubmittedBy == nil {
		response.Error(c, validate.Required("submitted_by", "string"))
		return
	}

	receipt, err := h.complaints.SubmitIntake(c.Request.Context(), *req.RawText, *req.SubmittedBy)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusCreated, gin.H{
		"message":      "Complaint logged successfully",
		"complaint_id": receipt.ComplaintID,
		"created_at":   receipt.CreatedAt,
	})
}

// GET /api/complaints
// query: ward_no, status, problem_type, sort, user_id (all optional)
func (h *ComplaintHandler) List(c *gin.Context) {
	query := c.Request.URL.Query()
	if err := validate.QueryParams(query, "ward_no", "status", "problem_type", "sort", "user_id"); err != nil {
		response.Error(c, err)
		return
	}

	var params services.ListParams
	if raw := c.Query("ward_no"); raw != "" {
		wardNo, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, apperr.New(apperr.KindValidation, "ward_no must be an integer"))
			return
		}
		params.WardNo = &wardNo
	}
	if raw := c.Query("status"); raw != "" {
		if err := validate.Enum("status", raw, domain.AllowedWorkflowStatuses); err != nil {
			response.Error(c, err)
			return
		}
		params.Status = &raw
	}
	if raw := c.Query("problem_type"); raw != "" {
		params.ProblemType = &raw
	}
	if raw := c.Query("user_id"); raw != "" {
		if err := validate.SubmitterID(raw); err != nil {
			response.Error(c, err)
			return
		}
		params.SubmittedBy = &raw
	}
	params.Sort = c.Query("sort")

	views, err := h.complaints.ListSummaries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"data": views, "count": len(views)})
}

// GET /api/my-complaints?user_id=...
func (h *ComplaintHandler) MyComplaints(c *gin.Context) {
	query := c.Request.URL.Query()
	if err := validate.QueryParams(query, "user_id"); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.Query("user_id")
	if userID == "" {
		response.Error(c, validate.Required("user_id", "string"))
		return
	}
	if err := validate.SubmitterID(userID); err != nil {
		response.Error(c, err)
		return
	}

	views, err := h.complaints.ListForSubmitter(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"data": views, "count": len(views)})
}

// GET /api/db-test
func (h *ComplaintHandler) DBTest(c *gin.Context) {
	ids, err := h.complaints.ProbeStore(c.Request.Context())
	if err != nil {
		h.log.Error("store probe failed", "error", err)
		response.Fail(c, http.StatusInternalServerError, "Database connection failed")
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"message":    "Database connection successful",
		"sample_ids": ids,
	})
}

func hasJSONContentType(c *gin.Context) bool {
	ct := c.GetHeader("Content-Type")
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(ct)), "application/json")
}
