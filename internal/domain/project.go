package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project — реализованный проект из портфолио компании.
//
// Проекты показывают применение материалов на реальных объектах.
// Избранные проекты (IsFeatured=true) выводятся на главной странице.
type Project struct {
	// ID — уникальный идентификатор проекта.
	ID uuid.UUID `json:"id"`

	// Title — название проекта.
	Title string `json:"title"`

	// Description — краткое описание.
	Description string `json:"description,omitempty"`

	// MaterialsUsed — список использованных материалов.
	MaterialsUsed []string `json:"materials_used,omitempty"`

	// Images — галерея изображений.
	Images []string `json:"images,omitempty"`

	// IsFeatured — показывать в превью на главной странице.
	IsFeatured bool `json:"is_featured"`

	// IsActive — флаг видимости на сайте.
	IsActive bool `json:"is_active"`

	// CreatedAt — время создания записи.
	CreatedAt time.Time `json:"created_at"`
}
