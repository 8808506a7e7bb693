package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/coastal_verification_system/internal/config"
	"github.com/shenikar/coastal_verification_system/internal/models"
	"github.com/shenikar/coastal_verification_system/internal/service/mocks"
	"github.com/shenikar/coastal_verification_system/internal/verifier"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockVerificationService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockVerificationService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func sampleResult(reportID uuid.UUID) *models.VerificationResult {
	return &models.VerificationResult{
		ID:            uuid.New(),
		ReportID:      reportID,
		AttemptNumber: 1,
		LayerResults: []models.LayerResult{
			{LayerName: models.LayerGeofence, Status: models.LayerPass, Score: 0.9, Confidence: 0.9, EvaluatedAt: time.Now().UTC()},
			{LayerName: models.LayerImage, Status: models.LayerSkip, Reasoning: "no images attached", EvaluatedAt: time.Now().UTC()},
		},
		WeightsUsed: map[models.LayerName]float64{
			models.LayerGeofence: 1.0,
			models.LayerImage:    0,
		},
		CompositeScore: 90,
		Decision:       models.DecisionAutoApproved,
		ComputedAt:     time.Now().UTC(),
	}
}

func TestSubmitReport_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := SubmitReportRequest{
		HazardType: "rip_current",
		Latitude:   36.6,
		Longitude:  -121.9,
		ReporterID: "reporter-1",
		Severity:   "high",
	}

	mockService.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, r *models.Report) (*models.VerificationResult, error) {
			r.ID = reportID
			r.Status = models.StateAutoApproved
			return sampleResult(reportID), nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/verification/report", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp VerificationResultResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reportID, resp.ReportID)
	assert.Equal(t, "auto_approved", resp.Decision)
	assert.Equal(t, "auto_approved", resp.ReportStatus)
	assert.InDelta(t, 90.0, resp.CompositeScore, 1e-9)
}

func TestSubmitReport_SkipLayerHasNoScore(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := SubmitReportRequest{
		HazardType: "rip_current",
		Latitude:   36.6,
		Longitude:  -121.9,
		ReporterID: "reporter-1",
	}

	mockService.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(sampleResult(reportID), nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/verification/report", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)

	// У skip-слоя поле score отсутствует в JSON, а не равно нулю
	var raw struct {
		LayerResults []map[string]any `json:"layer_results"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &raw)
	require.NoError(t, err)
	require.Len(t, raw.LayerResults, 2)
	assert.Contains(t, raw.LayerResults[0], "score")
	assert.NotContains(t, raw.LayerResults[1], "score")
}

func TestSubmitReport_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := SubmitReportRequest{ // Отсутствует ReporterID
		HazardType: "rip_current",
		Latitude:   36.6,
		Longitude:  -121.9,
	}

	mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/verification/report", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'ReporterID' failed on the 'required' tag")
}

func TestSubmitReport_InsufficientEvidence(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := SubmitReportRequest{
		HazardType: "rip_current",
		Latitude:   36.6,
		Longitude:  -121.9,
		ReporterID: "reporter-1",
	}

	mockService.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: evaluation failed: %w", verifier.ErrInsufficientEvidence)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/verification/report", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient evidence")
}

func TestGetVerification_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	report := &models.Report{ID: reportID, Status: models.StateNeedsManualReview}

	mockService.EXPECT().GetReport(gomock.Any(), reportID).Return(report, nil).Times(1)
	mockService.EXPECT().GetVerification(gomock.Any(), reportID).Return(sampleResult(reportID), nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/verification/report/%s", reportID.String()), nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp VerificationResultResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reportID, resp.ReportID)
	assert.Equal(t, "needs_manual_review", resp.ReportStatus)
}

func TestGetVerification_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/verification/report/invalid-uuid", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid report ID")
}

func TestGetVerification_ReportNotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().
		GetReport(gomock.Any(), reportID).
		Return(nil, fmt.Errorf("service: %w", verifier.ErrReportNotFound)).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/verification/report/%s", reportID.String()), nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "report not found")
}

func TestGetVerification_NoVerification(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	report := &models.Report{ID: reportID, Status: models.StatePending}

	mockService.EXPECT().GetReport(gomock.Any(), reportID).Return(report, nil).Times(1)
	mockService.EXPECT().
		GetVerification(gomock.Any(), reportID).
		Return(nil, fmt.Errorf("service: %w", verifier.ErrNoVerification)).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/verification/report/%s", reportID.String()), nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no verification result")
}

func TestRerun_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().Rerun(gomock.Any(), reportID).Return(sampleResult(reportID), nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/verification/report/%s/rerun", reportID.String()), nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp VerificationResultResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "auto_approved", resp.Decision)
}

func TestRerun_EvaluationInFlight(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().
		Rerun(gomock.Any(), reportID).
		Return(nil, fmt.Errorf("service: %w", verifier.ErrEvaluationInFlight)).
		Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/verification/report/%s/rerun", reportID.String()), nil, authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "evaluation already in flight")
}

func TestApprove_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := AnalystActionRequest{AnalystID: "analyst-1", Reason: "confirmed with harbormaster"}

	mockService.EXPECT().
		Approve(gomock.Any(), reportID, "analyst-1", "confirmed with harbormaster").
		Return("TICKET-42", nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/verification/report/%s/approve", reportID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ApproveResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reportID, resp.ReportID)
	assert.Equal(t, "verified", resp.Status)
	assert.Equal(t, "TICKET-42", resp.TicketID)
}

func TestApprove_InvalidTransition(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := AnalystActionRequest{AnalystID: "analyst-1"}

	mockService.EXPECT().
		Approve(gomock.Any(), reportID, "analyst-1", "").
		Return("", fmt.Errorf("report %s in state %q does not permit %q: %w", reportID, models.StatePending, "approve", verifier.ErrInvalidTransition)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/verification/report/%s/approve", reportID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "does not permit")
}

func TestApprove_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := AnalystActionRequest{Reason: "missing analyst"} // Отсутствует AnalystID

	mockService.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/verification/report/%s/approve", reportID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'AnalystID' failed on the 'required' tag")
}

func TestReject_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := AnalystActionRequest{AnalystID: "analyst-1", Reason: "location is a parking lot"}

	mockService.EXPECT().
		Reject(gomock.Any(), reportID, "analyst-1", "location is a parking lot").
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/verification/report/%s/reject", reportID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RejectResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
	assert.True(t, resp.Notified)
}

func TestListQueue_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	entries := []*models.QueueEntry{
		{ReportID: uuid.New(), HazardType: "rip_current", State: models.StateNeedsManualReview, CompositeScore: 42.5},
		{ReportID: uuid.New(), HazardType: "oil_spill", State: models.StateInvestigating, CompositeScore: 61, ClaimedBy: "analyst-1"},
	}

	mockService.EXPECT().ListQueue(gomock.Any(), 20, nil, nil).Return(entries, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/verification/queue", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []QueueEntryResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "rip_current", resp[0].HazardType)
	assert.Equal(t, "analyst-1", resp[1].ClaimedBy)
}

func TestListQueue_ScoreFilters(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListQueue(gomock.Any(), 5, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, limit int, minScore, maxScore *float64) ([]*models.QueueEntry, error) {
			require.NotNil(t, minScore)
			require.NotNil(t, maxScore)
			assert.InDelta(t, 40.0, *minScore, 1e-9)
			assert.InDelta(t, 60.0, *maxScore, 1e-9)
			return []*models.QueueEntry{}, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/verification/queue?limit=5&min_score=40&max_score=60", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListQueue_MalformedScoreFilterRejected(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	// Опечатка в фильтре не должна молча выдавать всю очередь
	mockService.EXPECT().ListQueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/verification/queue?min_score=abc", nil, authHeader())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid min_score")

	w = makeRequest(router, "GET", "/api/v1/verification/queue?max_score=12..5", nil, authHeader())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid max_score")
}

func TestClaimEntry_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := ClaimRequest{AnalystID: "analyst-1"}

	mockService.EXPECT().ClaimEntry(gomock.Any(), reportID, "analyst-1").Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/verification/report/%s/claim", reportID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClaimEntry_AlreadyClaimed(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := ClaimRequest{AnalystID: "analyst-2"}

	mockService.EXPECT().
		ClaimEntry(gomock.Any(), reportID, "analyst-2").
		Return(fmt.Errorf("report %s is claimed by %q: %w", reportID, "analyst-1", verifier.ErrAlreadyClaimed)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/verification/report/%s/claim", reportID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "claimed by")
}

func TestReleaseEntry_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().ReleaseEntry(gomock.Any(), reportID).Return(nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/verification/report/%s/release", reportID.String()), nil, authHeader())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestInvestigate_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := ClaimRequest{AnalystID: "analyst-1"}

	mockService.EXPECT().MarkInvestigating(gomock.Any(), reportID, "analyst-1").Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/verification/report/%s/investigate", reportID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		LayerHealth().
		Return(map[models.LayerName]verifier.LayerHealth{
			models.LayerGeofence: {Status: verifier.HealthUp, ErrorRate: 0, Samples: 50},
			models.LayerWeather:  {Status: verifier.HealthDegraded, ErrorRate: 0.2, Samples: 50},
		}).Times(1)

	// Health-check открыт без API-ключа
	w := makeRequest(router, "GET", "/api/v1/verification/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "up", resp.Layers["geofence"].Status)
}

func TestSecuredRoutes_RequireAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListQueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/verification/queue", nil) // Нет API ключа

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestSecuredRoutes_InvalidAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListQueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/verification/queue", nil, map[string]string{"X-API-Key": "wrong-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestSecuredRoutes_BearerTokenAccepted(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListQueue(gomock.Any(), 20, nil, nil).Return([]*models.QueueEntry{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/verification/queue", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}
