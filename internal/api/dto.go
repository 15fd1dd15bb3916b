package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/diwanalardiya/ardiya/internal/domain"
	"github.com/diwanalardiya/ardiya/internal/mailer"
)

// Product DTOs

// CreateProductRequest — запрос на создание товара.
type CreateProductRequest struct {
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Category     string         `json:"category"`
	MaterialType string         `json:"material_type,omitempty"`
	Size         string         `json:"size,omitempty"`
	Weight       string         `json:"weight,omitempty"`
	Images       []string       `json:"images,omitempty"`
	Specs        map[string]any `json:"specs,omitempty"`
	IsActive     *bool          `json:"is_active,omitempty"`
}

// UpdateProductRequest — запрос на частичное обновление товара.
type UpdateProductRequest struct {
	Title        *string         `json:"title,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Category     *string         `json:"category,omitempty"`
	MaterialType *string         `json:"material_type,omitempty"`
	Size         *string         `json:"size,omitempty"`
	Weight       *string         `json:"weight,omitempty"`
	Images       *[]string       `json:"images,omitempty"`
	Specs        *map[string]any `json:"specs,omitempty"`
	IsActive     *bool           `json:"is_active,omitempty"`
}

// ProductResponse — ответ с товаром.
type ProductResponse struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Category     string         `json:"category"`
	MaterialType string         `json:"material_type,omitempty"`
	Size         string         `json:"size,omitempty"`
	Weight       string         `json:"weight,omitempty"`
	Images       []string       `json:"images"`
	Specs        map[string]any `json:"specs,omitempty"`
	IsActive     bool           `json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ProductFromDomain конвертирует domain.Product в ProductResponse.
func ProductFromDomain(p domain.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		MaterialType: p.MaterialType,
		Size:         p.Size,
		Weight:       p.Weight,
		Images:       images,
		Specs:        p.Specs,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
	}
}

// Project DTOs

// CreateProjectRequest — запрос на создание проекта.
type CreateProjectRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	MaterialsUsed []string `json:"materials_used,omitempty"`
	Images        []string `json:"images,omitempty"`
	IsFeatured    bool     `json:"is_featured,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// UpdateProjectRequest — запрос на частичное обновление проекта.
type UpdateProjectRequest struct {
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	MaterialsUsed *[]string `json:"materials_used,omitempty"`
	Images        *[]string `json:"images,omitempty"`
	IsFeatured    *bool     `json:"is_featured,omitempty"`
	IsActive      *bool     `json:"is_active,omitempty"`
}

// ProjectResponse — ответ с проектом.
type ProjectResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	MaterialsUsed []string  `json:"materials_used"`
	Images        []string  `json:"images"`
	IsFeatured    bool      `json:"is_featured"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProjectFromDomain конвертирует domain.Project в ProjectResponse.
func ProjectFromDomain(p domain.Project) ProjectResponse {
	materials := p.MaterialsUsed
	if materials == nil {
		materials = []string{}
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProjectResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		MaterialsUsed: materials,
		Images:        images,
		IsFeatured:    p.IsFeatured,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
	}
}

// Lead DTOs

// CreateQuoteRequest — запрос коммерческого предложения с формы сайта.
type CreateQuoteRequest struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Product string `json:"product,omitempty"`
	Message string `json:"message,omitempty"`
}

// CreateContactRequest — сообщение с формы обратной связи.
type CreateContactRequest struct {
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Message  string `json:"message"`
	Interest string `json:"interest,omitempty"`
}

// LeadSubmittedResponse — ответ на создание заявки.
//
// Email описывает результат best-effort уведомления:
// отправлено, поставлено в очередь или только сохранено в БД.
type LeadSubmittedResponse struct {
	ID    uuid.UUID     `json:"id"`
	Email mailer.Result `json:"email"`
}

// QuoteResponse — запрос предложения (админ-листинг).
type QuoteResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Company    string     `json:"company,omitempty"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone,omitempty"`
	Product    string     `json:"product,omitempty"`
	Message    string     `json:"message,omitempty"`
	Status     string     `json:"status"`
	Attempts   int        `json:"attempts"`
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// QuoteFromDomain конвертирует domain.QuoteRequest в QuoteResponse.
func QuoteFromDomain(q domain.QuoteRequest) QuoteResponse {
	return QuoteResponse{
		ID:         q.ID,
		Name:       q.Name,
		Company:    q.Company,
		Email:      q.Email,
		Phone:      q.Phone,
		Product:    q.Product,
		Message:    q.Message,
		Status:     string(q.Status),
		Attempts:   q.Attempts,
		NotifiedAt: q.NotifiedAt,
		CreatedAt:  q.CreatedAt,
	}
}

// ContactResponse — сообщение обратной связи (админ-листинг).
type ContactResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Company    string     `json:"company,omitempty"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone,omitempty"`
	Message    string     `json:"message"`
	Interest   string     `json:"interest,omitempty"`
	Status     string     `json:"status"`
	Attempts   int        `json:"attempts"`
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ContactFromDomain конвертирует domain.ContactMessage в ContactResponse.
func ContactFromDomain(c domain.ContactMessage) ContactResponse {
	return ContactResponse{
		ID:         c.ID,
		Name:       c.Name,
		Company:    c.Company,
		Email:      c.Email,
		Phone:      c.Phone,
		Message:    c.Message,
		Interest:   c.Interest,
		Status:     string(c.Status),
		Attempts:   c.Attempts,
		NotifiedAt: c.NotifiedAt,
		CreatedAt:  c.CreatedAt,
	}
}
