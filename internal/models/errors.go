package models

import "fmt"

// ValidationError - ошибка пользовательского ввода, которую можно исправить на форме.
// До хранилища такие данные не доходят.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}
