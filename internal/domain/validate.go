package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// ValidateProduct проверяет обязательные поля товара.
//
// Проверяет:
// - Наличие названия
// - Наличие категории и её принадлежность списку Categories
func ValidateProduct(p *Product) error {
	if strings.TrimSpace(p.Title) == "" {
		return NewValidationError("title", "title is required", ErrEmptyTitle)
	}

	if strings.TrimSpace(p.Category) == "" {
		return NewValidationError("category", "category is required", ErrEmptyCategory)
	}

	if !ValidCategory(p.Category) {
		return NewValidationError("category",
			fmt.Sprintf("unknown category: %s", p.Category), ErrUnknownCategory)
	}

	return nil
}

// ValidateProject проверяет обязательные поля проекта.
func ValidateProject(p *Project) error {
	if strings.TrimSpace(p.Title) == "" {
		return NewValidationError("title", "title is required", ErrEmptyTitle)
	}

	return nil
}

// ValidateQuote проверяет обязательные поля запроса предложения.
//
// Обязательны имя и синтаксически корректный email.
// Остальные поля свободные.
func ValidateQuote(q *QuoteRequest) error {
	if strings.TrimSpace(q.Name) == "" {
		return NewValidationError("name", "name is required", ErrEmptyName)
	}

	return validateEmail(q.Email)
}

// ValidateContact проверяет обязательные поля сообщения обратной связи.
//
// В отличие от запроса предложения, текст сообщения обязателен.
func ValidateContact(c *ContactMessage) error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "name is required", ErrEmptyName)
	}

	if err := validateEmail(c.Email); err != nil {
		return err
	}

	if strings.TrimSpace(c.Message) == "" {
		return NewValidationError("message", "message is required", ErrEmptyMessage)
	}

	return nil
}

// validateEmail проверяет, что адрес непустой и парсится как RFC 5322.
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return NewValidationError("email", "email is required", ErrEmptyEmail)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return NewValidationError("email",
			fmt.Sprintf("invalid email address: %s", email), ErrInvalidEmail)
	}

	// ParseAddress принимает формы вида "Name <a@b>" — нам нужен голый адрес.
	if addr.Address != email {
		return NewValidationError("email",
			fmt.Sprintf("invalid email address: %s", email), ErrInvalidEmail)
	}

	return nil
}
