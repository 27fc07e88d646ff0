package models

import (
	"time"
)

const (
	// Подписи для инцидента, созданного вместе с обращением
	DerivedDisplayTime   = "Just now"
	DerivedDistanceLabel = "0 miles"
)

// Incident - отметка происшествия на карте
type Incident struct {
	ID            int64     `json:"id"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	Category      Category  `json:"category"`
	Description   *string   `json:"description,omitempty"`
	DisplayTime   *string   `json:"display_time,omitempty"`
	DistanceLabel *string   `json:"distance_label,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// HasLocation сообщает, можно ли отметить инцидент на карте
func (i Incident) HasLocation() bool {
	return i.Latitude != nil && i.Longitude != nil
}

// IncidentDraft - данные для создания инцидента до присвоения id хранилищем
type IncidentDraft struct {
	Latitude      *float64
	Longitude     *float64
	Category      Category
	Description   *string
	DisplayTime   *string
	DistanceLabel *string
}

// NewIncidentDraft собирает и проверяет черновик инцидента
func NewIncidentDraft(lat, lng *float64, category string, description, displayTime, distanceLabel *string) (IncidentDraft, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return IncidentDraft{}, err
	}
	d := IncidentDraft{
		Latitude:      lat,
		Longitude:     lng,
		Category:      c,
		Description:   description,
		DisplayTime:   displayTime,
		DistanceLabel: distanceLabel,
	}
	if err := d.Validate(); err != nil {
		return IncidentDraft{}, err
	}
	return d, nil
}

// Validate проверяет инварианты черновика
func (d IncidentDraft) Validate() error {
	if !d.Category.Valid() {
		return &ValidationError{Field: "category", Message: "unknown category " + string(d.Category)}
	}
	if err := validCoordinate("latitude", d.Latitude, MaxLatitude); err != nil {
		return err
	}
	return validCoordinate("longitude", d.Longitude, MaxLongitude)
}

// Materialize превращает черновик в запись с заданными id и временем создания
func (d IncidentDraft) Materialize(id int64, createdAt time.Time) Incident {
	return Incident{
		ID:            id,
		Latitude:      d.Latitude,
		Longitude:     d.Longitude,
		Category:      d.Category,
		Description:   d.Description,
		DisplayTime:   d.DisplayTime,
		DistanceLabel: d.DistanceLabel,
		CreatedAt:     createdAt,
	}
}
