package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	unreadTrue  = "true"
	unreadFalse = "false"
)

// FormatCoordinate переводит координату в текст для хранения.
// Используется кратчайшее представление, которое читается обратно без потерь.
func FormatCoordinate(v *float64) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatFloat(*v, 'g', -1, 64)
	return &s
}

// ParseCoordinate читает сохраненную координату. Пустое значение и NULL дают nil, а не ноль.
func ParseCoordinate(stored *string) (*float64, error) {
	if stored == nil {
		return nil, nil
	}
	raw := strings.TrimSpace(*stored)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("malformed stored coordinate %q", raw)
	}
	return &v, nil
}

// ParseCoordinateInput разбирает координату из формы и проверяет диапазон
func ParseCoordinateInput(field, raw string, limit float64) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, &ValidationError{Field: field, Message: "must be a number"}
	}
	if v < -limit || v > limit {
		return nil, &ValidationError{Field: field, Message: fmt.Sprintf("must be between %g and %g", -limit, limit)}
	}
	return &v, nil
}

// FormatUnread переводит флаг непрочитанного уведомления в хранимый текст
func FormatUnread(unread bool) string {
	if unread {
		return unreadTrue
	}
	return unreadFalse
}

// ParseUnread - обратное отображение. Непрочитанным считается только литерал "true".
func ParseUnread(stored string) bool {
	return stored == unreadTrue
}

// OptionalString возвращает nil для пустой строки
func OptionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func validCoordinate(field string, v *float64, limit float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < -limit || *v > limit {
		return &ValidationError{Field: field, Message: fmt.Sprintf("must be between %g and %g", -limit, limit)}
	}
	return nil
}

const (
	MaxLatitude  = 90.0
	MaxLongitude = 180.0
)
