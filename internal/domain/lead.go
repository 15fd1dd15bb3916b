package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeadKind — вид заявки с сайта.
type LeadKind string

const (
	// LeadKindQuote — запрос коммерческого предложения.
	LeadKindQuote LeadKind = "quote"

	// LeadKindContact — сообщение через форму обратной связи.
	LeadKindContact LeadKind = "contact"
)

// LeadStatus — статус уведомления по заявке.
//
// Жизненный цикл:
//
//	NEW → NOTIFIED
//
// Заявка остаётся в NEW, если email-канал не настроен —
// тогда она доступна только в БД и через админ-листинг.
type LeadStatus string

const (
	// LeadStatusNew — заявка сохранена, уведомление не отправлено.
	LeadStatusNew LeadStatus = "NEW"

	// LeadStatusNotified — уведомление по заявке доставлено.
	LeadStatusNotified LeadStatus = "NOTIFIED"
)

// IsTerminal возвращает true, если статус финальный.
func (s LeadStatus) IsTerminal() bool {
	return s == LeadStatusNotified
}

// QuoteRequest — запрос коммерческого предложения с сайта.
//
// Сохраняется всегда; отправка email — best-effort побочный эффект.
type QuoteRequest struct {
	// ID — уникальный идентификатор заявки.
	ID uuid.UUID `json:"id"`

	// Name — имя отправителя.
	Name string `json:"name"`

	// Company — компания отправителя.
	Company string `json:"company,omitempty"`

	// Email — адрес для ответа.
	Email string `json:"email"`

	// Phone — контактный телефон.
	Phone string `json:"phone,omitempty"`

	// Product — интересующий товар (свободный текст).
	Product string `json:"product,omitempty"`

	// Message — сопроводительное сообщение.
	Message string `json:"message,omitempty"`

	// Status — статус уведомления.
	Status LeadStatus `json:"status"`

	// Attempts — число попыток отправки уведомления.
	Attempts int `json:"attempts"`

	// NotifiedAt — время успешной отправки уведомления.
	NotifiedAt *time.Time `json:"notified_at,omitempty"`

	// CreatedAt — время создания заявки.
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessage — сообщение через форму обратной связи.
type ContactMessage struct {
	// ID — уникальный идентификатор сообщения.
	ID uuid.UUID `json:"id"`

	// Name — имя отправителя.
	Name string `json:"name"`

	// Company — компания отправителя.
	Company string `json:"company,omitempty"`

	// Email — адрес для ответа.
	Email string `json:"email"`

	// Phone — контактный телефон.
	Phone string `json:"phone,omitempty"`

	// Message — текст сообщения.
	Message string `json:"message"`

	// Interest — область интереса (категория, услуга).
	Interest string `json:"interest,omitempty"`

	// Status — статус уведомления.
	Status LeadStatus `json:"status"`

	// Attempts — число попыток отправки уведомления.
	Attempts int `json:"attempts"`

	// NotifiedAt — время успешной отправки уведомления.
	NotifiedAt *time.Time `json:"notified_at,omitempty"`

	// CreatedAt — время создания сообщения.
	CreatedAt time.Time `json:"created_at"`
}
