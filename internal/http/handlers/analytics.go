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

type AnalyticsHandler struct {
	analytics services.AnalyticsService
	log       *logger.Logger
}

func NewAnalyticsHandler(analytics services.AnalyticsService, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		log:       log.With("handler", "AnalyticsHandler"),
	}
}

// GET /api/analytics?ward_no=7
func (h *AnalyticsHandler) WardCounters(c *gin.Context) {
	if err := validate.QueryParams(c.Request.URL.Query(), "ward_no"); err != nil {
		response.Error(c, err)
		return
	}
	wardNo, err := requiredWardQuery(c, "ward_no")
	if err != nil {
		response.Error(c, err)
		return
	}

	counters, err := h.analytics.WardCounters(c.Request.Context(), wardNo)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"data": counters})
}

// GET /api/reports/submissions?ward=7&verified=false&sort=newest
func (h *AnalyticsHandler) Submissions(c *gin.Context) {
	if err := validate.QueryParams(c.Request.URL.Query(), "ward", "verified", "sort"); err != nil {
		response.Error(c, err)
		return
	}
	wardNo, err := requiredWardQuery(c, "ward")
	if err != nil {
		response.Error(c, err)
		return
	}

	var verified *bool
	switch c.Query("verified") {
	case "":
	case "true":
		v := true
		verified = &v
	case "false":
		v := false
		verified = &v
	default:
		response.Error(c, apperr.New(apperr.KindValidation, "verified must be true or false"))
		return
	}

	sort := c.Query("sort")
	if sort == "" {
		sort = "newest"
	}
	if err := validate.Sort(sort); err != nil {
		response.Error(c, err)
		return
	}

	views, err := h.analytics.ListSubmissions(c.Request.Context(), wardNo, verified, sort == "newest")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"submissions": views})
}

func requiredWardQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, apperr.New(apperr.KindValidation, "Ward number is required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Newf(apperr.KindValidation, "%s must be an integer", name)
	}
	return v, nil
}
