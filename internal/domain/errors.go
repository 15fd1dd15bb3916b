package domain

import "errors"

// Ошибки валидации входных данных.
var (
	// ErrEmptyTitle — не указано название товара или проекта.
	ErrEmptyTitle = errors.New("title is required")

	// ErrEmptyCategory — не указана категория товара.
	ErrEmptyCategory = errors.New("category is required")

	// ErrUnknownCategory — категория вне фиксированного списка.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrEmptyName — не указано имя отправителя заявки.
	ErrEmptyName = errors.New("name is required")

	// ErrEmptyEmail — не указан email отправителя.
	ErrEmptyEmail = errors.New("email is required")

	// ErrInvalidEmail — email не является корректным адресом.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrEmptyMessage — не указан текст сообщения.
	ErrEmptyMessage = errors.New("message is required")
)

// ValidationError — ошибка валидации с указанием поля.
type ValidationError struct {
	Field   string // поле, вызвавшее ошибку
	Message string // описание ошибки
	Err     error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// Unwrap возвращает базовую ошибку.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError создаёт новую ошибку валидации.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
