package store

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/shenikar/civic_guardian/internal/models"
)

var (
	// ErrStoreUnavailable - хранилище не настроено, недоступно или не ответило за отведенное время.
	// Вызывающий код переходит на данные только текущей сессии.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrTransientIO - прочая ошибка чтения или записи
	ErrTransientIO = errors.New("transient store i/o failure")
)

// classify приводит ошибку бэкенда к таксономии хранилища
func classify(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var opErr *net.OpError
	switch {
	case errors.Is(ctx.Err(), context.Canceled), errors.Is(err, context.Canceled):
		// отмену запроса вызывающим нельзя считать сбоем хранилища
		return context.Canceled
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	case errors.As(err, &opErr):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransientIO, err)
	}
}

func resultLabel(err error) string {
	var vErr *models.ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &vErr):
		return "invalid"
	case errors.Is(err, ErrStoreUnavailable):
		return "unavailable"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}
