package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Askwho/mounjaro-hub/internal/domain/dto"
	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/mocks"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupRouter builds a storage-less router: only the pure calculation
// endpoints (breakdown, preview) and infrastructure routes are registered.
func setupRouter() *gin.Engine {
	calculator := service.NewMetricsCalculatorService()
	decay := service.NewDecayCalculatorService()
	analytics := service.NewAnalyticsService(nil, nil, calculator, decay)
	handler := NewHandler(analytics, nil)
	healthHandler := NewHealthHandler()
	cfg := DefaultRouterConfig()
	cfg.AnalyticsService = analytics
	return NewRouter(handler, healthHandler, cfg)
}

// setupStorageRouter wires the full route set over mocked repositories.
func setupStorageRouter() (*gin.Engine, *mocks.MockPensRepositoryInterface, *mocks.MockDosesRepositoryInterface) {
	calculator := service.NewMetricsCalculatorService()
	decay := service.NewDecayCalculatorService()
	pensRepo := new(mocks.MockPensRepositoryInterface)
	dosesRepo := new(mocks.MockDosesRepositoryInterface)
	analytics := service.NewAnalyticsService(pensRepo, dosesRepo, calculator, decay)

	handler := NewHandler(analytics, nil)
	healthHandler := NewHealthHandler()

	cfg := DefaultRouterConfig()
	cfg.AnalyticsService = analytics
	cfg.PensService = service.NewPensService(pensRepo, dosesRepo, nil, decay)
	cfg.DosesService = service.NewDosesService(dosesRepo, pensRepo, decay)

	return NewRouter(handler, healthHandler, cfg), pensRepo, dosesRepo
}

func TestBreakdown(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "dose straddling click capacity",
			body:           `{"pen_size": 10, "used_before": 35, "dose_mg": 10}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.NotEmpty(t, resp.RequestID)

				dataBytes, _ := json.Marshal(resp.Data)
				var payload struct {
					Breakdown     model.DoseBreakdown `json:"breakdown"`
					SizeInCatalog bool                `json:"size_in_catalog"`
				}
				err = json.Unmarshal(dataBytes, &payload)
				assert.NoError(t, err)
				assert.Equal(t, 5.0, payload.Breakdown.FromClicks)
				assert.Equal(t, 5.0, payload.Breakdown.FromSyringe)
				assert.Equal(t, 30, payload.Breakdown.ClickCount)
				assert.True(t, payload.Breakdown.RequiresSyringe)
				assert.True(t, payload.SizeInCatalog)
			},
		},
		{
			name:           "dose fully from clicks",
			body:           `{"pen_size": 5, "used_before": 0, "dose_mg": 5}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)

				dataBytes, _ := json.Marshal(resp.Data)
				var payload struct {
					Breakdown model.DoseBreakdown `json:"breakdown"`
				}
				err = json.Unmarshal(dataBytes, &payload)
				assert.NoError(t, err)
				assert.Equal(t, 5.0, payload.Breakdown.FromClicks)
				assert.Equal(t, 0.0, payload.Breakdown.FromSyringe)
				assert.Equal(t, 60, payload.Breakdown.ClickCount)
				assert.False(t, payload.Breakdown.RequiresSyringe)
			},
		},
		{
			name:           "invalid JSON",
			body:           `invalid`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero dose",
			body:           `{"pen_size": 10, "used_before": 0, "dose_mg": 0}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing pen size",
			body:           `{"dose_mg": 5}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/breakdown", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	router := setupRouter()

	body := `{
		"pens": [{"id": "pen-1", "size": 10, "purchase_date": "2026-01-05T00:00:00Z", "expiration_date": "2026-06-01T00:00:00Z"}],
		"doses": [{"id": "dose-1", "pen_id": "pen-1", "date": "2026-02-01T00:00:00Z", "mg": 5, "is_completed": true}],
		"now": "2026-03-01T12:00:00Z"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/preview", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)

	dataBytes, _ := json.Marshal(resp.Data)
	var system model.SystemMetrics
	err = json.Unmarshal(dataBytes, &system)
	assert.NoError(t, err)
	assert.Equal(t, 1, system.TotalPens)
	assert.Equal(t, 1, system.ActivePens)
	assert.Equal(t, 0, system.ExpiredPens)
	assert.Equal(t, 50.0, system.TotalCapacity)
	assert.Equal(t, 5.0, system.TotalUsed)
	assert.Equal(t, 45.0, system.TotalRemaining)
}

func TestPreview_MissingPens(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/preview", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStorageRoutesAbsentWithoutDatabase(t *testing.T) {
	router := setupRouter()

	paths := []string{"/api/pens", "/api/doses", "/api/metrics/system"}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestSystemMetrics(t *testing.T) {
	router, pensRepo, dosesRepo := setupStorageRouter()

	pens := []model.Pen{
		{ID: "pen-1", Size: 10, PurchaseDate: parseDate(t, "2026-01-05"), ExpirationDate: parseDate(t, "2026-12-01")},
	}
	doses := []model.Dose{
		{ID: "dose-1", PenID: "pen-1", Date: parseDate(t, "2026-02-01"), Mg: 5, IsCompleted: true},
	}
	pensRepo.On("List", mockAnything, localUserID).Return(pens, nil)
	dosesRepo.On("List", mockAnything, localUserID).Return(doses, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/metrics/system", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)

	dataBytes, _ := json.Marshal(resp.Data)
	var system model.SystemMetrics
	err = json.Unmarshal(dataBytes, &system)
	assert.NoError(t, err)
	assert.Equal(t, 1, system.TotalPens)
	assert.Equal(t, 5.0, system.TotalUsed)
}

func TestConcentrationCurve(t *testing.T) {
	router, _, dosesRepo := setupStorageRouter()

	doses := []model.Dose{
		{ID: "dose-1", PenID: "pen-1", Date: parseDate(t, "2026-02-01"), Mg: 5, IsCompleted: true},
	}
	dosesRepo.On("List", mockAnything, localUserID).Return(doses, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/concentration?from=2026-02-01T00:00:00Z&to=2026-02-03T00:00:00Z", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)

	dataBytes, _ := json.Marshal(resp.Data)
	var curve []model.ConcentrationPoint
	err = json.Unmarshal(dataBytes, &curve)
	assert.NoError(t, err)
	assert.Len(t, curve, 3)
	assert.Equal(t, 5.0, curve[0].Actual)
}

func TestConcentrationAt(t *testing.T) {
	router, _, dosesRepo := setupStorageRouter()

	doses := []model.Dose{
		{ID: "dose-1", PenID: "pen-1", Date: parseDate(t, "2026-02-01"), Mg: 5, IsCompleted: true},
	}
	dosesRepo.On("List", mockAnything, localUserID).Return(doses, nil)

	// One half-life (5 days) after a 5mg dose.
	req := httptest.NewRequest(http.MethodGet, "/api/concentration?at=2026-02-06T00:00:00Z", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)

	dataBytes, _ := json.Marshal(resp.Data)
	var point model.ConcentrationPoint
	err = json.Unmarshal(dataBytes, &point)
	assert.NoError(t, err)
	assert.Equal(t, parseDate(t, "2026-02-06"), point.Date)
	assert.InDelta(t, 2.5, point.Actual, 1e-9)
	assert.InDelta(t, 2.5, point.Projected, 1e-9)
}

func TestConcentrationAt_MalformedDate(t *testing.T) {
	router, _, _ := setupStorageRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/concentration?at=yesterday", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConcentrationCurve_InvertedRange(t *testing.T) {
	router, _, _ := setupStorageRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/concentration?from=2026-02-03T00:00:00Z&to=2026-02-01T00:00:00Z", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoints(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "liveness probe",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
		{
			name:           "readiness probe",
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func BenchmarkBreakdown(b *testing.B) {
	router := setupRouter()
	body := []byte(`{"pen_size": 10, "used_before": 35, "dose_mg": 10}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/breakdown", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}
