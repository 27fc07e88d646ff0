package v1

import (
	"time"

	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/session"
)

// SubmitReportRequest DTO формы обращения. Фото передается отдельным файлом photo в multipart форме.
// Координаты принимаются строкой, чтобы некорректный ввод вернулся пользователю как ошибка валидации.
// @Description DTO формы обращения
type SubmitReportRequest struct {
	FullName    string `form:"fullname" json:"fullname" validate:"max=255"`
	Contact     string `form:"contact" json:"contact" validate:"max=255"`
	Category    string `form:"category" json:"category" validate:"required"`
	Description string `form:"description" json:"description" validate:"required,max=5000"`
	Latitude    string `form:"latitude" json:"latitude"`
	Longitude   string `form:"longitude" json:"longitude"`
	Date        string `form:"date" json:"date" validate:"max=64"`
}

// EmergencyRequest DTO тревожного вызова
// @Description DTO тревожного вызова. Без координат местоположение определяется по IP.
type EmergencyRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// SessionResponse DTO для ответа с состоянием сессии
// @Description DTO для ответа с состоянием сессии
type SessionResponse struct {
	ID            string        `json:"id"`
	Incidents     session.State `json:"incidents" swaggertype:"string" example:"loaded_from_store"`
	Reports       session.State `json:"reports" swaggertype:"string" example:"loaded_from_store"`
	Notifications session.State `json:"notifications" swaggertype:"string" example:"loaded_fallback"`
	IncidentCount int           `json:"incident_count"`
	ReportCount   int           `json:"report_count"`
	UnreadCount   int           `json:"unread_count"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID            int64           `json:"id"`
	Latitude      *float64        `json:"latitude"`
	Longitude     *float64        `json:"longitude"`
	Category      models.Category `json:"category" swaggertype:"string"`
	Description   *string         `json:"description,omitempty"`
	DisplayTime   *string         `json:"display_time,omitempty"`
	DistanceLabel *string         `json:"distance_label,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ReportResponse DTO обращения. Фото отдается отдельным запросом по PhotoURL.
// @Description DTO обращения
type ReportResponse struct {
	ID          int64               `json:"id"`
	FullName    *string             `json:"fullname,omitempty"`
	Contact     *string             `json:"contact,omitempty"`
	Category    models.Category     `json:"category" swaggertype:"string"`
	Description string              `json:"description"`
	Latitude    *float64            `json:"latitude"`
	Longitude   *float64            `json:"longitude"`
	Date        *string             `json:"date,omitempty"`
	PhotoName   *string             `json:"photo_name,omitempty"`
	PhotoURL    string              `json:"photo_url,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	Status      models.ReportStatus `json:"status" swaggertype:"string"`
}

// NotificationResponse DTO уведомления
// @Description DTO уведомления
type NotificationResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DisplayTime string    `json:"display_time"`
	Unread      bool      `json:"unread"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReceiptResponse DTO результата изменения.
// Durable=false означает, что изменение сохранено только в текущей сессии.
// @Description DTO результата изменения
type ReceiptResponse struct {
	ID      int64  `json:"id,omitempty"`
	Durable bool   `json:"durable"`
	Warning string `json:"warning,omitempty"`
}

// SubmitReportResponse DTO результата отправки обращения
// @Description DTO результата отправки обращения
type SubmitReportResponse struct {
	Report   ReceiptResponse  `json:"report"`
	Incident *ReceiptResponse `json:"incident,omitempty"`
}

// LocationResponse DTO координат пользователя
// @Description DTO координат пользователя
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Source    string  `json:"source"`
}

// EmergencyResponse DTO результата тревожного вызова
// @Description DTO результата тревожного вызова
type EmergencyResponse struct {
	Notification ReceiptResponse  `json:"notification"`
	Location     LocationResponse `json:"location"`
	Dispatched   bool             `json:"dispatched"`
}

// ProfileResponse DTO счетчиков профиля
// @Description DTO счетчиков профиля
type ProfileResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	ReportsToday        int            `json:"reports_today"`
	ResponseRate        float64        `json:"response_rate"`
	Total               int            `json:"total"`
	Pending             int            `json:"pending"`
	Resolved            int            `json:"resolved"`
	IncidentsByCategory map[string]int `json:"incidents_by_category"`
}

// HealthResponse DTO состояния сервиса
// @Description DTO состояния сервиса
type HealthResponse struct {
	Status   string `json:"status"`
	Store    string `json:"store"`
	Sessions int    `json:"sessions"`
}
