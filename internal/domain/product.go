package domain

import (
	"time"

	"github.com/google/uuid"
)

// Categories — фиксированный список категорий каталога.
//
// Категории задаются бизнесом и не хранятся в БД:
// товар обязан принадлежать одной из них.
var Categories = []string{
	"Timber & Plywood",
	"Steel & Rebar",
	"Fixings & Hardware",
	"HVAC & Installation",
}

// ValidCategory проверяет, что категория входит в фиксированный список.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Product — товар каталога строительных материалов.
//
// Товары публикуются на сайте компании. Неактивные товары
// (IsActive=false) скрыты из публичных выборок, но остаются в БД.
type Product struct {
	// ID — уникальный идентификатор товара.
	ID uuid.UUID `json:"id"`

	// Title — название товара.
	Title string `json:"title"`

	// Description — описание товара.
	Description string `json:"description,omitempty"`

	// Category — категория из фиксированного списка Categories.
	Category string `json:"category"`

	// MaterialType — тип/семейство материала (например, "softwood", "galvanized").
	MaterialType string `json:"material_type,omitempty"`

	// Size — размер или габариты ("18mm x 1220mm x 2440mm").
	Size string `json:"size,omitempty"`

	// Weight — вес или плотность.
	Weight string `json:"weight,omitempty"`

	// Images — URL изображений товара.
	Images []string `json:"images,omitempty"`

	// Specs — произвольные характеристики (ключ → значение).
	Specs map[string]any `json:"specs,omitempty"`

	// IsActive — флаг видимости на сайте.
	IsActive bool `json:"is_active"`

	// CreatedAt — время создания записи.
	CreatedAt time.Time `json:"created_at"`
}
