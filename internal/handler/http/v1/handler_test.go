package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/civic_guardian/internal/config"
	"github.com/shenikar/civic_guardian/internal/geo"
	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/service"
	"github.com/shenikar/civic_guardian/internal/service/mocks"
	"github.com/shenikar/civic_guardian/internal/session"
)

const testSID = "3f1c9a52-8d7e-4b0a-9c61-5e2f7d8a1b34"

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockDashboardService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDashboardService(ctrl)

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

// reportForm собирает multipart форму обращения
func reportForm(t *testing.T, fields map[string]string, photoName string, photo []byte) (io.Reader, map[string]string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if photo != nil {
		part, err := mw.CreateFormFile("photo", photoName)
		require.NoError(t, err)
		_, err = part.Write(photo)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, map[string]string{"Content-Type": mw.FormDataContentType()}
}

func sessionMissing() error {
	return fmt.Errorf("service: session %s: %w", testSID, session.ErrSessionNotFound)
}

func TestOpenSession(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	// Ожидания
	mockService.EXPECT().OpenSession(gomock.Any()).Return(session.Snapshot{
		ID:            testSID,
		Incidents:     session.StateLoadedFromStore,
		Reports:       session.StateLoadedFromStore,
		Notifications: session.StateLoadedFallback,
		ReportCount:   2,
	})

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/sessions", nil)

	// Проверки
	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testSID, resp["id"])
	assert.Equal(t, "loaded_from_store", resp["incidents"])
	assert.Equal(t, "loaded_fallback", resp["notifications"])
	assert.EqualValues(t, 2, resp["report_count"])
}

func TestGetSession_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetSession(gomock.Any(), "missing").Return(session.Snapshot{}, sessionMissing())

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "session not found"}`, w.Body.String())
}

func TestCloseSession(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CloseSession(gomock.Any(), testSID).Return(nil)

	w := makeRequest(router, http.MethodDelete, "/api/v1/sessions/"+testSID, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListIncidents(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	lat, lng := 9.33706, 125.9698
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mockService.EXPECT().ListIncidents(gomock.Any(), testSID).Return([]models.Incident{
		{ID: 1, Latitude: &lat, Longitude: &lng, Category: models.CategoryHazard, CreatedAt: created},
		{ID: 2, Category: models.CategoryOther, CreatedAt: created},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+testSID+"/incidents", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, lat, *resp[0].Latitude)
	assert.Nil(t, resp[1].Latitude)
	assert.Equal(t, models.CategoryOther, resp[1].Category)
}

func TestListReports_Filter(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	photoName := "a.png"

	// Ожидания
	mockService.EXPECT().
		ListReports(gomock.Any(), testSID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, f service.ReportFilter) ([]models.Report, error) {
			require.NotNil(t, f.Category)
			assert.Equal(t, models.CategoryTheft, *f.Category)
			require.NotNil(t, f.From)
			assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *f.From)
			assert.Nil(t, f.To)
			return []models.Report{
				{ID: 7, Category: models.CategoryTheft, Description: "bike", Photo: pngHeader, PhotoName: &photoName, Status: models.StatusPending},
				{ID: 8, Category: models.CategoryTheft, Description: "wallet", Status: models.StatusResolved},
			}, nil
		})

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+testSID+"/reports?category=Theft&from=2024-05-01", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp []ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "/api/v1/sessions/"+testSID+"/reports/7/photo", resp[0].PhotoURL)
	assert.Empty(t, resp[1].PhotoURL)
	assert.Equal(t, models.StatusResolved, resp[1].Status)
	assert.NotContains(t, w.Body.String(), `"photo":`)
}

func TestListReports_InvalidFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{name: "unknown category", query: "category=arson", field: "category"},
		{name: "bad from", query: "from=01-05-2024", field: "from"},
		{name: "bad to", query: "to=yesterday", field: "to"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().ListReports(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+testSID+"/reports?"+tt.query, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.field, resp["field"])
		})
	}
}

func TestRecentReports(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().RecentReports(gomock.Any(), testSID).Return([]models.Report{{ID: 3, Category: models.CategoryAccident}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+testSID+"/reports/recent", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":3`)
}

func TestExportReports(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ExportReportsCSV(gomock.Any(), testSID, service.ReportFilter{}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ service.ReportFilter, w io.Writer) error {
			_, err := io.WriteString(w, "id,fullname\n1,Ana\n")
			return err
		})

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+testSID+"/reports/export", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "reports.csv")
	assert.Equal(t, "id,fullname\n1,Ana\n", w.Body.String())
}

func TestExportReports_SessionNotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ExportReportsCSV(gomock.Any(), "gone", gomock.Any(), gomock.Any()).
		Return(sessionMissing())

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/gone/reports/export", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

func TestSubmitReport_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	body, headers := reportForm(t, map[string]string{
		"fullname":    "Ana Cruz",
		"contact":     "",
		"category":    "hazard",
		"description": "Fallen power line",
		"latitude":    "9.33706",
		"longitude":   "125.9698",
		"date":        "2024-05-01",
	}, "line.png", pngHeader)
	incident := session.Receipt{ID: 12, Durable: true}

	// Ожидания
	mockService.EXPECT().
		SubmitReport(gomock.Any(), testSID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, d models.ReportDraft) (session.SubmitResult, error) {
			assert.Equal(t, models.CategoryHazard, d.Category)
			require.NotNil(t, d.FullName)
			assert.Equal(t, "Ana Cruz", *d.FullName)
			assert.Nil(t, d.Contact)
			require.NotNil(t, d.Latitude)
			assert.Equal(t, 9.33706, *d.Latitude)
			assert.Equal(t, pngHeader, d.Photo)
			require.NotNil(t, d.PhotoName)
			assert.Equal(t, "line.png", *d.PhotoName)
			return session.SubmitResult{Report: session.Receipt{ID: 5, Durable: true}, Incident: &incident}, nil
		})

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+testSID+"/reports", body, headers)

	// Проверки
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"report": {"id": 5, "durable": true}, "incident": {"id": 12, "durable": true}}`, w.Body.String())
}

func TestSubmitReport_Degraded(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	body, headers := reportForm(t, map[string]string{
		"category":    "other",
		"description": "Loud noise",
	}, "", nil)

	mockService.EXPECT().
		SubmitReport(gomock.Any(), testSID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, d models.ReportDraft) (session.SubmitResult, error) {
			assert.Nil(t, d.Latitude)
			assert.Nil(t, d.Photo)
			assert.Nil(t, d.PhotoName)
			return session.SubmitResult{Report: session.Receipt{ID: 1, Degraded: errors.New("store unavailable")}}, nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+testSID+"/reports", body, headers)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp SubmitReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Report.Durable)
	assert.NotEmpty(t, resp.Report.Warning)
	assert.Nil(t, resp.Incident)
}

func TestSubmitReport_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
	}{
		{name: "missing description", fields: map[string]string{"category": "theft"}},
		{name: "missing category", fields: map[string]string{"description": "bike"}},
		{name: "unknown category", fields: map[string]string{"category": "arson", "description": "bike"}},
		{name: "malformed latitude", fields: map[string]string{"category": "theft", "description": "bike", "latitude": "abc"}},
		{name: "longitude out of range", fields: map[string]string{"category": "theft", "description": "bike", "longitude": "181"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			body, headers := reportForm(t, tt.fields, "", nil)

			mockService.EXPECT().SubmitReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+testSID+"/reports", body, headers)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmitReport_RejectedPhoto(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	body, headers := reportForm(t, map[string]string{"category": "theft", "description": "bike"}, "a.gif", []byte("GIF89a"))

	mockService.EXPECT().
		SubmitReport(gomock.Any(), testSID, gomock.Any()).
		Return(session.SubmitResult{}, &models.ValidationError{Field: "photo", Message: "only jpg, jpeg and png photos are accepted"})

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+testSID+"/reports", body, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"photo"`)
}

func TestGetReportPhoto(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)
		mockService.EXPECT().ReportPhoto(gomock.Any(), testSID, int64(7)).
			Return(service.Photo{Name: "a.png", ContentType: "image/png", Data: pngHeader}, nil)

		w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+testSID+"/reports/7/photo", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, pngHeader, w.Body.Bytes())
		disposition, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
		require.NoError(t, err)
		assert.Equal(t, "inline", disposition)
		assert.Equal(t, "a.png", params["filename"])
	})

	t.Run("filename with quotes stays one parameter", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)
		mockService.EXPECT().ReportPhoto(gomock.Any(), testSID, int64(9)).
			Return(service.Photo{Name: `a".png; filename=evil.html`, ContentType: "image/png", Data: pngHeader}, nil)

		w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+testSID+"/reports/9/photo", nil)

		require.Equal(t, http.StatusOK, w.Code)
		_, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
		require.NoError(t, err)
		assert.Equal(t, `a".png; filename=evil.html`, params["filename"])
	})

	t.Run("no photo", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)
		mockService.EXPECT().ReportPhoto(gomock.Any(), testSID, int64(8)).
			Return(service.Photo{}, fmt.Errorf("service: report 8: %w", service.ErrPhotoNotFound))

		w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+testSID+"/reports/8/photo", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)
		mockService.EXPECT().ReportPhoto(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+testSID+"/reports/abc/photo", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNotifications(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListNotifications(gomock.Any(), testSID).Return([]models.Notification{
		{ID: 1, Title: "Emergency Alert Sent", DisplayTime: "Just now", Unread: true},
	}, nil)
	mockService.EXPECT().MarkAllNotificationsRead(gomock.Any(), testSID).Return(session.Receipt{Durable: true}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+testSID+"/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []NotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.True(t, list[0].Unread)

	w = makeRequest(router, http.MethodPost, "/api/v1/sessions/"+testSID+"/notifications/read-all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"durable": true}`, w.Body.String())
}

func TestTriggerEmergency_ClientCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := `{"latitude": 14.5995, "longitude": 120.9842}`

	mockService.EXPECT().
		TriggerEmergency(gomock.Any(), testSID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req service.EmergencyRequest) (service.EmergencyResult, error) {
			require.NotNil(t, req.Latitude)
			assert.Equal(t, 14.5995, *req.Latitude)
			assert.Equal(t, 120.9842, *req.Longitude)
			return service.EmergencyResult{
				Notification: session.Receipt{ID: 4, Durable: true},
				Location:     geo.Location{Latitude: *req.Latitude, Longitude: *req.Longitude, Source: "client"},
				Dispatched:   true,
			}, nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+testSID+"/emergency", strings.NewReader(reqBody))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Dispatched)
	assert.Equal(t, int64(4), resp.Notification.ID)
	assert.Equal(t, "client", resp.Location.Source)
}

func TestTriggerEmergency_LocatesByIP(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		TriggerEmergency(gomock.Any(), testSID, service.EmergencyRequest{ClientIP: "192.0.2.1"}).
		Return(service.EmergencyResult{
			Notification: session.Receipt{ID: 1, Degraded: errors.New("store unavailable")},
			Location:     geo.Location{Latitude: 9.33706, Longitude: 125.9698, Source: geo.SourceDefault},
		}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+testSID+"/emergency", nil)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Dispatched)
	assert.NotEmpty(t, resp.Notification.Warning)
	assert.Equal(t, geo.SourceDefault, resp.Location.Source)
}

func TestTriggerEmergency_InvalidCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().TriggerEmergency(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+testSID+"/emergency", strings.NewReader(`{"latitude": 95, "longitude": 10}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProfile(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Profile(gomock.Any(), testSID).Return(service.ProfileStats{Total: 3, Pending: 2, Resolved: 1}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+testSID+"/profile", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total": 3, "pending": 2, "resolved": 1}`, w.Body.String())
}

func TestAdminRoutes_Auth(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "missing key", headers: map[string]string{}},
		{name: "invalid key", headers: map[string]string{"X-API-Key": "wrong"}},
		{name: "invalid bearer", headers: map[string]string{"Authorization": "Bearer wrong"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().AdminStats(gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, http.MethodGet, "/api/v1/admin/sessions/"+testSID+"/stats", nil, tt.headers)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestGetStats(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AdminStats(gomock.Any(), testSID).Return(service.AdminStats{
		ReportsToday:        1,
		ResponseRate:        33.3,
		Total:               3,
		Pending:             2,
		Resolved:            1,
		IncidentsByCategory: map[models.Category]int{models.CategoryTheft: 2},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/admin/sessions/"+testSID+"/stats", nil,
		map[string]string{"Authorization": "Bearer test-api-key"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 33.3, resp.ResponseRate)
	assert.Equal(t, 2, resp.IncidentsByCategory["theft"])
}

func TestResolveReport(t *testing.T) {
	auth := map[string]string{"X-API-Key": "test-api-key"}

	t.Run("success", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)
		mockService.EXPECT().ResolveReport(gomock.Any(), testSID, int64(5)).Return(session.Receipt{Durable: true}, nil)

		w := makeRequest(router, http.MethodPost, "/api/v1/admin/sessions/"+testSID+"/reports/5/resolve", nil, auth)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)
		mockService.EXPECT().ResolveReport(gomock.Any(), testSID, int64(99)).
			Return(session.Receipt{Durable: true}, fmt.Errorf("service: report with id 99 not found for resolve: %w", service.ErrReportNotFound))

		w := makeRequest(router, http.MethodPost, "/api/v1/admin/sessions/"+testSID+"/reports/99/resolve", nil, auth)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "report not found"}`, w.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)
		mockService.EXPECT().ResolveReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, http.MethodPost, "/api/v1/admin/sessions/"+testSID+"/reports/0/resolve", nil, auth)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteReport(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DeleteReport(gomock.Any(), testSID, int64(5)).
		Return(session.Receipt{Degraded: errors.New("store unavailable")}, nil)

	w := makeRequest(router, http.MethodDelete, "/api/v1/admin/sessions/"+testSID+"/reports/5", nil,
		map[string]string{"X-API-Key": "test-api-key"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp ReceiptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Durable)
	assert.NotEmpty(t, resp.Warning)
}

func TestInternalError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Profile(gomock.Any(), testSID).Return(service.ProfileStats{}, errors.New("boom"))

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+testSID+"/profile", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, w.Body.String())
}

func TestGetLocation(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Locate(gomock.Any(), "192.0.2.1").
		Return(geo.Location{Latitude: 14.5995, Longitude: 120.9842, Source: geo.SourceLookup})

	w := makeRequest(router, http.MethodGet, "/api/v1/location", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"latitude": 14.5995, "longitude": 120.9842, "source": "lookup"}`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Health(gomock.Any()).Return(service.Health{Store: "available", Sessions: 2})

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok", "store": "available", "sessions": 2}`, w.Body.String())
}
