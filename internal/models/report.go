package models

import (
	"strings"
	"time"
)

// Report - обращение пользователя о происшествии
type Report struct {
	ID          int64        `json:"id"`
	FullName    *string      `json:"fullname,omitempty"`
	Contact     *string      `json:"contact,omitempty"`
	Category    Category     `json:"category"`
	Description string       `json:"description"`
	Latitude    *float64     `json:"latitude"`
	Longitude   *float64     `json:"longitude"`
	Date        *string      `json:"date,omitempty"`
	Photo       []byte       `json:"-"`
	PhotoName   *string      `json:"photo_name,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	Status      ReportStatus `json:"status"`
}

func (r Report) HasPhoto() bool {
	return len(r.Photo) > 0
}

// ReportDraft - данные формы обращения
type ReportDraft struct {
	FullName    *string
	Contact     *string
	Category    Category
	Description string
	Latitude    *float64
	Longitude   *float64
	Date        *string
	Photo       []byte
	PhotoName   *string
}

// NewReportDraft собирает и проверяет черновик обращения
func NewReportDraft(fullName, contact *string, category, description string, lat, lng *float64, date *string, photo []byte, photoName *string) (ReportDraft, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return ReportDraft{}, err
	}
	d := ReportDraft{
		FullName:    fullName,
		Contact:     contact,
		Category:    c,
		Description: description,
		Latitude:    lat,
		Longitude:   lng,
		Date:        date,
		Photo:       photo,
		PhotoName:   photoName,
	}
	if err := d.Validate(); err != nil {
		return ReportDraft{}, err
	}
	return d, nil
}

// Validate проверяет обязательные поля и диапазоны координат
func (d ReportDraft) Validate() error {
	if !d.Category.Valid() {
		return &ValidationError{Field: "category", Message: "unknown category " + string(d.Category)}
	}
	if strings.TrimSpace(d.Description) == "" {
		return &ValidationError{Field: "description", Message: "write a description"}
	}
	if err := validCoordinate("latitude", d.Latitude, MaxLatitude); err != nil {
		return err
	}
	if err := validCoordinate("longitude", d.Longitude, MaxLongitude); err != nil {
		return err
	}
	if len(d.Photo) > 0 && (d.PhotoName == nil || strings.TrimSpace(*d.PhotoName) == "") {
		return &ValidationError{Field: "photo_name", Message: "photo requires a file name"}
	}
	return nil
}

// DerivedIncident возвращает инцидент для карты, если в обращении указаны обе координаты
func (d ReportDraft) DerivedIncident() (IncidentDraft, bool) {
	if d.Latitude == nil || d.Longitude == nil {
		return IncidentDraft{}, false
	}
	description := d.Description
	displayTime := DerivedDisplayTime
	distance := DerivedDistanceLabel
	return IncidentDraft{
		Latitude:      d.Latitude,
		Longitude:     d.Longitude,
		Category:      d.Category,
		Description:   &description,
		DisplayTime:   &displayTime,
		DistanceLabel: &distance,
	}, true
}

// Materialize превращает черновик в запись со статусом pending
func (d ReportDraft) Materialize(id int64, createdAt time.Time) Report {
	return Report{
		ID:          id,
		FullName:    d.FullName,
		Contact:     d.Contact,
		Category:    d.Category,
		Description: d.Description,
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
		Date:        d.Date,
		Photo:       d.Photo,
		PhotoName:   d.PhotoName,
		CreatedAt:   createdAt,
		Status:      StatusPending,
	}
}
