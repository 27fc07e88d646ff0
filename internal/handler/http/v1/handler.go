package v1

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/civic_guardian/internal/config"
	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/service"
	"github.com/shenikar/civic_guardian/internal/session"
)

// maxPhotoBytes - предельный размер загружаемого фото
const maxPhotoBytes = 5 << 20

type Handler struct {
	dashboardService service.DashboardService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(dashboardService service.DashboardService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondError переводит ошибку сервиса в HTTP статус
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
	case errors.Is(err, session.ErrSessionNotFound):
		log.WithError(err).Warn("Session not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrReportNotFound):
		log.WithError(err).Warn("Report not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
	case errors.Is(err, service.ErrPhotoNotFound):
		log.WithError(err).Warn("Report has no photo")
		c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
	default:
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseReportID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return 0, false
	}
	return id, true
}

// @Summary Open a session
// @Description Open a dashboard session. Incidents, reports and notifications are loaded from the store or fall back to session-only data.
// @Tags Sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /sessions [post]
func (h *Handler) openSession(c *gin.Context) {
	snapshot := h.dashboardService.OpenSession(c.Request.Context())
	h.logger.WithField("method", "openSession").WithField("session_id", snapshot.ID).Info("Session opened")
	c.JSON(http.StatusCreated, SnapshotToSessionResponse(snapshot))
}

// @Summary Get session state
// @Description Get per-collection load state and counters of a session
// @Tags Sessions
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sid} [get]
func (h *Handler) getSession(c *gin.Context) {
	log := h.logger.WithField("method", "getSession").WithField("session_id", c.Param("sid"))

	snapshot, err := h.dashboardService.GetSession(c.Request.Context(), c.Param("sid"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SnapshotToSessionResponse(snapshot))
}

// @Summary Close a session
// @Description Close a session and drop its cached data
// @Tags Sessions
// @Param sid path string true "Session ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sid} [delete]
func (h *Handler) closeSession(c *gin.Context) {
	log := h.logger.WithField("method", "closeSession").WithField("session_id", c.Param("sid"))

	if err := h.dashboardService.CloseSession(c.Request.Context(), c.Param("sid")); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List incidents
// @Description List incidents for the map
// @Tags Incidents
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {array} IncidentResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sid}/incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents").WithField("session_id", c.Param("sid"))

	incidents, err := h.dashboardService.ListIncidents(c.Request.Context(), c.Param("sid"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary List reports
// @Description List reports filtered by category and date range
// @Tags Reports
// @Produce json
// @Param sid path string true "Session ID"
// @Param category query string false "Category" Enums(theft, vandalism, accident, suspicious, hazard, other)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} ReportResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sid}/reports [get]
func (h *Handler) listReports(c *gin.Context) {
	sid := c.Param("sid")
	log := h.logger.WithField("method", "listReports").WithField("session_id", sid)

	filter, err := QueryToReportFilter(c.Query("category"), c.Query("from"), c.Query("to"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	reports, err := h.dashboardService.ListReports(c.Request.Context(), sid, filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToReportResponses(sid, reports))
}

// @Summary Recent reports
// @Description Five newest reports of the session
// @Tags Reports
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {array} ReportResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sid}/reports/recent [get]
func (h *Handler) recentReports(c *gin.Context) {
	sid := c.Param("sid")
	log := h.logger.WithField("method", "recentReports").WithField("session_id", sid)

	reports, err := h.dashboardService.RecentReports(c.Request.Context(), sid)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToReportResponses(sid, reports))
}

// @Summary Export reports
// @Description Export filtered reports as CSV
// @Tags Reports
// @Produce text/csv
// @Param sid path string true "Session ID"
// @Param category query string false "Category"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sid}/reports/export [get]
func (h *Handler) exportReports(c *gin.Context) {
	sid := c.Param("sid")
	log := h.logger.WithField("method", "exportReports").WithField("session_id", sid)

	filter, err := QueryToReportFilter(c.Query("category"), c.Query("from"), c.Query("to"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	// Пишем в буфер, чтобы при ошибке успеть отдать JSON вместо обрезанного файла
	var buf bytes.Buffer
	if err := h.dashboardService.ExportReportsCSV(c.Request.Context(), sid, filter, &buf); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="reports.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// @Summary Submit a report
// @Description Submit an incident report. A report with both coordinates also places an incident on the map.
// @Tags Reports
// @Accept multipart/form-data
// @Produce json
// @Param sid path string true "Session ID"
// @Param fullname formData string false "Full name"
// @Param contact formData string false "Contact"
// @Param category formData string true "Category"
// @Param description formData string true "Description"
// @Param latitude formData string false "Latitude"
// @Param longitude formData string false "Longitude"
// @Param date formData string false "Date of the incident"
// @Param photo formData file false "Photo (jpg or png)"
// @Success 201 {object} SubmitReportResponse
// @Failure 400 {object} map[string]string "Invalid form"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sid}/reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	sid := c.Param("sid")
	log := h.logger.WithField("method", "submitReport").WithField("session_id", sid)

	var input SubmitReportRequest
	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo, photoName, err := readPhoto(c)
	if err != nil {
		log.WithError(err).Warn("Failed to read photo")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := DTOToReportDraft(input, photo, photoName)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	result, err := h.dashboardService.SubmitReport(c.Request.Context(), sid, draft)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SubmitResultToResponse(result))
}

// readPhoto читает необязательный файл photo из формы
func readPhoto(c *gin.Context) ([]byte, string, error) {
	header, err := c.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	if header.Size > maxPhotoBytes {
		return nil, "", errors.New("photo is too large")
	}

	f, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes+1))
	if err != nil {
		return nil, "", err
	}
	if len(data) > maxPhotoBytes {
		return nil, "", errors.New("photo is too large")
	}
	return data, header.Filename, nil
}

// @Summary Get report photo
// @Description Get the photo attached to a report
// @Tags Reports
// @Produce image/jpeg,image/png
// @Param sid path string true "Session ID"
// @Param id path int true "Report ID"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Session, report or photo not found"
// @Router /sessions/{sid}/reports/{id}/photo [get]
func (h *Handler) getReportPhoto(c *gin.Context) {
	id, ok := parseReportID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getReportPhoto").WithField("session_id", c.Param("sid")).WithField("id", id)

	photo, err := h.dashboardService.ReportPhoto(c.Request.Context(), c.Param("sid"), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if photo.Name != "" {
		// имя файла пришло от пользователя, кавычки и не-ASCII символы экранирует mime
		if disposition := mime.FormatMediaType("inline", map[string]string{"filename": photo.Name}); disposition != "" {
			c.Header("Content-Disposition", disposition)
		}
	}
	c.Data(http.StatusOK, photo.ContentType, photo.Data)
}

// @Summary List notifications
// @Description List notifications of the session
// @Tags Notifications
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {array} NotificationResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sid}/notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "listNotifications").WithField("session_id", c.Param("sid"))

	notifications, err := h.dashboardService.ListNotifications(c.Request.Context(), c.Param("sid"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNotificationResponses(notifications))
}

// @Summary Mark all notifications read
// @Description Mark every notification of the session as read
// @Tags Notifications
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} ReceiptResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sid}/notifications/read-all [post]
func (h *Handler) markAllNotificationsRead(c *gin.Context) {
	log := h.logger.WithField("method", "markAllNotificationsRead").WithField("session_id", c.Param("sid"))

	receipt, err := h.dashboardService.MarkAllNotificationsRead(c.Request.Context(), c.Param("sid"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ReceiptToResponse(receipt))
}

// @Summary Trigger an emergency alert
// @Description Record an emergency notification and notify emergency services. Without coordinates the location is resolved from the client IP.
// @Tags Notifications
// @Accept json
// @Produce json
// @Param sid path string true "Session ID"
// @Param emergency body EmergencyRequest false "Client coordinates"
// @Success 201 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sid}/emergency [post]
func (h *Handler) triggerEmergency(c *gin.Context) {
	sid := c.Param("sid")
	log := h.logger.WithField("method", "triggerEmergency").WithField("session_id", sid)

	var input EmergencyRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.dashboardService.TriggerEmergency(c.Request.Context(), sid, service.EmergencyRequest{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		ClientIP:  c.ClientIP(),
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, EmergencyResponse{
		Notification: ReceiptToResponse(result.Notification),
		Location:     LocationToResponse(result.Location),
		Dispatched:   result.Dispatched,
	})
}

// @Summary Get profile counters
// @Description Get total, pending and resolved report counts
// @Tags Profile
// @Produce json
// @Param sid path string true "Session ID"
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sid}/profile [get]
func (h *Handler) getProfile(c *gin.Context) {
	log := h.logger.WithField("method", "getProfile").WithField("session_id", c.Param("sid"))

	stats, err := h.dashboardService.Profile(c.Request.Context(), c.Param("sid"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ProfileResponse(stats))
}

// @Summary Get admin statistics
// @Description Get report and incident statistics. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /admin/sessions/{sid}/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats").WithField("session_id", c.Param("sid"))

	stats, err := h.dashboardService.AdminStats(c.Request.Context(), c.Param("sid"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatsToResponse(stats))
}

// @Summary Resolve a report
// @Description Mark a report as resolved. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Param id path int true "Report ID"
// @Success 200 {object} ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session or report not found"
// @Router /admin/sessions/{sid}/reports/{id}/resolve [post]
func (h *Handler) resolveReport(c *gin.Context) {
	id, ok := parseReportID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "resolveReport").WithField("session_id", c.Param("sid")).WithField("id", id)

	receipt, err := h.dashboardService.ResolveReport(c.Request.Context(), c.Param("sid"), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ReceiptToResponse(receipt))
}

// @Summary Delete a report
// @Description Delete a report. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Param id path int true "Report ID"
// @Success 200 {object} ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session or report not found"
// @Router /admin/sessions/{sid}/reports/{id} [delete]
func (h *Handler) deleteReport(c *gin.Context) {
	id, ok := parseReportID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteReport").WithField("session_id", c.Param("sid")).WithField("id", id)

	receipt, err := h.dashboardService.DeleteReport(c.Request.Context(), c.Param("sid"), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ReceiptToResponse(receipt))
}

// @Summary Get approximate location
// @Description Resolve the client location from its IP address
// @Tags Location
// @Produce json
// @Success 200 {object} LocationResponse
// @Router /location [get]
func (h *Handler) getLocation(c *gin.Context) {
	c.JSON(http.StatusOK, LocationToResponse(h.dashboardService.Locate(c.Request.Context(), c.ClientIP())))
}

// @Summary Get application health status
// @Description Get health status of the application and its store
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	health := h.dashboardService.Health(c.Request.Context())
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Store: health.Store, Sessions: health.Sessions})
}
