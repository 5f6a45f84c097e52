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
	"github.com/shenikar/forest_fire_monitoring/internal/config"
	v1mocks "github.com/shenikar/forest_fire_monitoring/internal/handler/http/v1/mocks"
	"github.com/shenikar/forest_fire_monitoring/internal/models"
	"github.com/shenikar/forest_fire_monitoring/internal/service"
	service_mocks "github.com/shenikar/forest_fire_monitoring/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	apiKeyHeader   = map[string]string{"X-API-Key": "test-api-key"}
	adminHeaders   = map[string]string{"X-API-Key": "test-api-key", "X-User-Email": "admin@sifdurango.com", "X-User-Name": "Admin User"}
	operatorHeader = map[string]string{"X-API-Key": "test-api-key", "X-User-Email": "operator@sifdurango.com"}
	viewerHeaders  = map[string]string{"X-API-Key": "test-api-key", "X-User-Email": "viewer@sifdurango.com"}
)

// newTestHandler создает новый экземпляр Handler с мокированными зависимостями
func newTestHandler(t *testing.T) (*service_mocks.MockMonitoringService, *v1mocks.MockPreferencesStore, *gin.Engine) {
	ctrl := gomock.NewController(t)
	serviceMock := service_mocks.NewMockMonitoringService(ctrl)
	prefsMock := v1mocks.NewMockPreferencesStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(serviceMock, prefsMock, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return serviceMock, prefsMock, router
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

func TestHealthCheck_OpenWithoutAPIKey(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListCameras_MissingAPIKey(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/cameras", nil)

	// Проверки
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListCameras_InvalidAPIKey(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/cameras", nil, map[string]string{"X-API-Key": "wrong-key"})

	// Проверки
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListCameras_Success(t *testing.T) {
	// Подготовка
	serviceMock, _, router := newTestHandler(t)
	cameras := models.SeedCameras()[:2]

	// Ожидания
	serviceMock.EXPECT().
		Cameras(gomock.Any()).
		Return(cameras).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/cameras", nil, apiKeyHeader)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)

	var resp []CameraResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "cam-01", resp[0].ID)
	assert.Equal(t, "Cerro del Púlpito", resp[0].Name)
	assert.NotEmpty(t, resp[0].StatusHistory)
}

func TestCreateCamera_MissingActor(t *testing.T) {
	// Подготовка: без X-User-Email сервис не должен вызываться
	_, _, router := newTestHandler(t)
	body := bytes.NewBufferString(`{"name":"Torre Norte","latitude":24.5,"longitude":-104.9}`)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/cameras", body, apiKeyHeader)

	// Проверки
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateCamera_Success(t *testing.T) {
	// Подготовка
	serviceMock, _, router := newTestHandler(t)

	created := &models.Camera{
		ID:             "cam-1717171717171",
		Name:           "Torre Norte",
		Latitude:       24.5,
		Longitude:      -104.9,
		Status:         models.CameraStatusActive,
		ActivationDate: time.Now(),
		StatusHistory:  []models.CameraStatusHistory{{Status: models.CameraStatusActive, Timestamp: time.Now()}},
	}

	// Ожидания
	serviceMock.EXPECT().
		AddCamera(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(created, nil).
		Times(1)

	// Действие
	body := bytes.NewBufferString(`{"name":"Torre Norte","latitude":24.5,"longitude":-104.9}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/cameras", body, adminHeaders)

	// Проверки
	require.Equal(t, http.StatusCreated, w.Code)

	var resp CameraResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "Torre Norte", resp.Name)
}

func TestCreateCamera_ValidationError(t *testing.T) {
	// Подготовка: имя отсутствует
	_, _, router := newTestHandler(t)
	body := bytes.NewBufferString(`{"latitude":24.5,"longitude":-104.9}`)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/cameras", body, adminHeaders)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCamera_Forbidden(t *testing.T) {
	// Подготовка
	serviceMock, _, router := newTestHandler(t)

	// Ожидания: сервис отклоняет действие по роли
	serviceMock.EXPECT().
		AddCamera(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: role %q requires at least %q: %w", models.RoleViewer, models.RoleAdmin, service.ErrForbidden)).
		Times(1)

	// Действие
	body := bytes.NewBufferString(`{"name":"Torre Norte","latitude":24.5,"longitude":-104.9}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/cameras", body, viewerHeaders)

	// Проверки
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeactivateCamera_Success(t *testing.T) {
	// Подготовка
	serviceMock, _, router := newTestHandler(t)

	// Ожидания
	serviceMock.EXPECT().
		DeactivateCamera(gomock.Any(), gomock.Any(), "cam-01").
		Return(nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodDelete, "/api/v1/cameras/cam-01", nil, adminHeaders)

	// Проверки
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestToggleCameraFavorite_Success(t *testing.T) {
	// Подготовка
	serviceMock, _, router := newTestHandler(t)

	// Ожидания
	serviceMock.EXPECT().
		ToggleCameraFavorite(gomock.Any(), gomock.Any(), "cam-02").
		Return(nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/cameras/cam-02/favorite", nil, viewerHeaders)

	// Проверки
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateAlertStatus_Success(t *testing.T) {
	// Подготовка
	serviceMock, _, router := newTestHandler(t)

	// Ожидания
	serviceMock.EXPECT().
		UpdateAlertStatus(gomock.Any(), gomock.Any(), "alert-1", models.AlertStatusConfirmed).
		Return(nil).
		Times(1)

	// Действие
	body := bytes.NewBufferString(`{"status":"confirmed"}`)
	w := makeRequest(router, http.MethodPut, "/api/v1/alerts/alert-1/status", body, operatorHeader)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateAlertStatus_InvalidStatus(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)

	// Действие
	body := bytes.NewBufferString(`{"status":"resolved"}`)
	w := makeRequest(router, http.MethodPut, "/api/v1/alerts/alert-1/status", body, operatorHeader)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddAlertNote_Success(t *testing.T) {
	// Подготовка
	serviceMock, _, router := newTestHandler(t)

	// Ожидания
	serviceMock.EXPECT().
		AddAlertNote(gomock.Any(), gomock.Any(), "alert-1", "Humo visible").
		Return(nil).
		Times(1)

	// Действие
	body := bytes.NewBufferString(`{"text":"Humo visible"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/alert-1/notes", body, operatorHeader)

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAlertHistory_NotFound(t *testing.T) {
	// Подготовка
	serviceMock, _, router := newTestHandler(t)

	// Ожидания
	serviceMock.EXPECT().
		AlertHistory(gomock.Any(), "alert-missing").
		Return(nil, false).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/alert-missing/history", nil, apiKeyHeader)

	// Проверки
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAlertPerimeter_Success(t *testing.T) {
	// Подготовка
	serviceMock, _, router := newTestHandler(t)
	perimeter := models.PredictedPerimeter{
		{24.18, -104.62}, {24.19, -104.57}, {24.18, -104.52}, {24.13, -104.51},
		{24.08, -104.52}, {24.07, -104.57}, {24.08, -104.62}, {24.13, -104.63},
	}

	// Ожидания
	serviceMock.EXPECT().
		AlertPerimeter(gomock.Any(), "alert-1").
		Return(perimeter, true).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/alert-1/perimeter", nil, apiKeyHeader)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)

	var resp PerimeterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alert-1", resp.AlertID)
	assert.Len(t, resp.Points, 8)
}

func TestGetStats_Success(t *testing.T) {
	// Подготовка
	serviceMock, _, router := newTestHandler(t)

	// Ожидания
	serviceMock.EXPECT().
		Stats(gomock.Any()).
		Return(models.Stats{ActiveCameras: 8, AlertsToday: 3, FalsePositives: 1}).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/stats", nil, apiKeyHeader)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"active_cameras":8,"alerts_today":3,"false_positives":1}`, w.Body.String())
}

func TestListAuditLog_Success(t *testing.T) {
	// Подготовка
	serviceMock, _, router := newTestHandler(t)

	// Ожидания
	serviceMock.EXPECT().
		AuditLog(gomock.Any()).
		Return([]models.AuditLogEntry{{
			EntityType: models.EntityCamera,
			EntityID:   "cam-01",
			EntityName: "Cerro del Púlpito",
			Action:     models.ActionCameraCreated,
			User:       "Sistema",
		}}).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/audit", nil, apiKeyHeader)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)

	var resp []AuditLogEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, models.ActionCameraCreated, resp[0].Action)
}

func TestCreateUser_Success(t *testing.T) {
	// Подготовка
	serviceMock, _, router := newTestHandler(t)

	// Ожидания
	serviceMock.EXPECT().
		AddUser(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	body := bytes.NewBufferString(`{"name":"Nuevo Operador","email":"operator2@sifdurango.com","role":"Operator"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/users", body, adminHeaders)

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)

	// Действие
	body := bytes.NewBufferString(`{"name":"Nuevo","email":"x@sifdurango.com","role":"Root"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/users", body, adminHeaders)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeactivateUser_Success(t *testing.T) {
	// Подготовка
	serviceMock, _, router := newTestHandler(t)

	// Ожидания
	serviceMock.EXPECT().
		DeactivateUser(gomock.Any(), gomock.Any(), "viewer@sifdurango.com").
		Return(nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodDelete, "/api/v1/users/viewer@sifdurango.com", nil, adminHeaders)

	// Проверки
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetPreference_Success(t *testing.T) {
	// Подготовка
	_, prefsMock, router := newTestHandler(t)

	// Ожидания
	prefsMock.EXPECT().
		Get(gomock.Any(), "theme").
		Return("dark", true, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/preferences/theme", nil, apiKeyHeader)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"key":"theme","value":"dark"}`, w.Body.String())
}

func TestGetPreference_NotSet(t *testing.T) {
	// Подготовка
	_, prefsMock, router := newTestHandler(t)

	// Ожидания
	prefsMock.EXPECT().
		Get(gomock.Any(), "report_logo").
		Return("", false, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/preferences/report_logo", nil, apiKeyHeader)

	// Проверки
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPreference_UnknownKey(t *testing.T) {
	// Подготовка: хранилище не должно вызываться
	_, _, router := newTestHandler(t)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/preferences/password", nil, apiKeyHeader)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetPreference_Success(t *testing.T) {
	// Подготовка
	_, prefsMock, router := newTestHandler(t)

	// Ожидания
	prefsMock.EXPECT().
		Set(gomock.Any(), "theme", "light").
		Return(nil).
		Times(1)

	// Действие
	body := bytes.NewBufferString(`{"value":"light"}`)
	w := makeRequest(router, http.MethodPut, "/api/v1/preferences/theme", body, apiKeyHeader)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
}
