package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
	"github.com/civiclens/civiclens-backend/internal/services"
)

type fakeComplaintService struct {
	receipt    *services.IntakeReceipt
	submitErr  error
	lastText   string
	lastUser   string
	listParams services.ListParams
	views      []services.SummaryView
}

func (f *fakeComplaintService) SubmitIntake(_ context.Context, rawText, submittedBy string) (*services.IntakeReceipt, error) {
	f.lastText = rawText
	f.lastUser = submittedBy
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.receipt, nil
}

func (f *fakeComplaintService) ListSummaries(_ context.Context, params services.ListParams) ([]services.SummaryView, error) {
	f.listParams = params
	return f.views, nil
}

func (f *fakeComplaintService) ListForSubmitter(_ context.Context, _ string) ([]services.SummaryView, error) {
	return f.views, nil
}

func (f *fakeComplaintService) ProbeStore(_ context.Context) ([]uint, error) {
	return []uint{1}, nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func newComplaintRouter(t *testing.T, svc services.ComplaintService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewComplaintHandler(svc, testLogger(t))
	r := gin.New()
	r.POST("/api/complaints", h.Submit)
	r.GET("/api/complaints", h.List)
	r.GET("/api/my-complaints", h.MyComplaints)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestSubmitRejectsNonJSONContentType(t *testing.T) {
	r := newComplaintRouter(t, &fakeComplaintService{})

	req := httptest.NewRequest(http.MethodPost, "/api/complaints", strings.NewReader("complaint=foo"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Invalid Content-Type. Expected application/json" {
		t.Errorf("error = %v", body["error"])
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestSubmitMissingDescriptionField(t *testing.T) {
	r := newComplaintRouter(t, &fakeComplaintService{})

	req := httptest.NewRequest(http.MethodPost, "/api/complaints",
		strings.NewReader(`{"submitted_by":"citizen_1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Complaint description is required and must be a string" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestSubmitSuccessEnvelope(t *testing.T) {
	svc := &fakeComplaintService{receipt: &services.IntakeReceipt{
		ComplaintID: 11,
		CreatedAt:   time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
	}}
	r := newComplaintRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/complaints",
		strings.NewReader(`{"raw_text":"Large pothole near the market junction","submitted_by":"citizen_1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	if body["complaint_id"] != float64(11) {
		t.Errorf("complaint_id = %v", body["complaint_id"])
	}
	if svc.lastUser != "citizen_1" {
		t.Errorf("submitted_by passed through = %q", svc.lastUser)
	}
}

func TestListRejectsUnknownQueryParameter(t *testing.T) {
	r := newComplaintRouter(t, &fakeComplaintService{})

	req := httptest.NewRequest(http.MethodGet, "/api/complaints?foo=bar", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	msg, _ := body["error"].(string)
	if !strings.Contains(msg, "Invalid query parameter(s): foo") {
		t.Errorf("error = %q, want invalid parameter named", msg)
	}
	if !strings.Contains(msg, "Allowed parameters:") {
		t.Errorf("error = %q, want allowed list enumerated", msg)
	}
}

func TestListRejectsUnknownStatus(t *testing.T) {
	r := newComplaintRouter(t, &fakeComplaintService{})

	req := httptest.NewRequest(http.MethodGet, "/api/complaints?status=Closed", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	msg, _ := body["error"].(string)
	if !strings.Contains(msg, "Invalid status value") || !strings.Contains(msg, "Resolved") {
		t.Errorf("error = %q", msg)
	}
}

func TestListPassesFiltersAndCounts(t *testing.T) {
	svc := &fakeComplaintService{views: []services.SummaryView{{ID: "c7-42"}, {ID: "c7-43"}}}
	r := newComplaintRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/complaints?ward_no=7&status=Resolved&sort=oldest", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if svc.listParams.WardNo == nil || *svc.listParams.WardNo != 7 {
		t.Errorf("ward_no filter = %v", svc.listParams.WardNo)
	}
	if svc.listParams.Sort != "oldest" {
		t.Errorf("sort = %q", svc.listParams.Sort)
	}
	body := decodeBody(t, w)
	if body["count"] != float64(2) {
		t.Errorf("count = %v, want 2", body["count"])
	}
}

func TestMyComplaintsRequiresUserID(t *testing.T) {
	r := newComplaintRouter(t, &fakeComplaintService{})

	req := httptest.NewRequest(http.MethodGet, "/api/my-complaints", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "user_id is required and must be a string" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestMyComplaintsEmptyListIsSuccess(t *testing.T) {
	r := newComplaintRouter(t, &fakeComplaintService{views: []services.SummaryView{}})

	req := httptest.NewRequest(http.MethodGet, "/api/my-complaints?user_id=citizen_1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["count"] != float64(0) {
		t.Errorf("count = %v, want 0", body["count"])
	}
	if _, ok := body["data"].([]interface{}); !ok {
		t.Errorf("data = %v, want empty array", body["data"])
	}
}
