package models

import (
	"strings"
)

// Category - тип происшествия, закрытое множество значений
type Category string

const (
	CategoryTheft      Category = "theft"
	CategoryVandalism  Category = "vandalism"
	CategoryAccident   Category = "accident"
	CategorySuspicious Category = "suspicious"
	CategoryHazard     Category = "hazard"
	CategoryOther      Category = "other"
)

var categories = []Category{
	CategoryTheft,
	CategoryVandalism,
	CategoryAccident,
	CategorySuspicious,
	CategoryHazard,
	CategoryOther,
}

// Categories возвращает все допустимые категории в порядке отображения
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid сообщает, входит ли категория в допустимое множество
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory разбирает пользовательский ввод в категорию
func ParseCategory(raw string) (Category, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return "", &ValidationError{Field: "category", Message: "select a category"}
	}
	c := Category(value)
	if !c.Valid() {
		return "", &ValidationError{Field: "category", Message: "unknown category " + raw}
	}
	return c, nil
}

// ReportStatus - статус обработки обращения
type ReportStatus string

const (
	StatusPending  ReportStatus = "pending"
	StatusResolved ReportStatus = "resolved"
)

func (s ReportStatus) Valid() bool {
	return s == StatusPending || s == StatusResolved
}

// ParseReportStatus разбирает статус обращения
func ParseReportStatus(raw string) (ReportStatus, error) {
	s := ReportStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", &ValidationError{Field: "status", Message: "unknown status " + raw}
	}
	return s, nil
}
