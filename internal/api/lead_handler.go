package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/diwanalardiya/ardiya/internal/domain"
	"github.com/diwanalardiya/ardiya/internal/mailer"
	"github.com/diwanalardiya/ardiya/internal/repo"
)

// CreateQuote принимает запрос коммерческого предложения.
// POST /api/v1/quotes
//
// Заявка всегда сохраняется в БД; уведомление — best-effort:
// результат попытки возвращается в поле email ответа.
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	quote := &domain.QuoteRequest{
		ID:        uuid.New(),
		Name:      req.Name,
		Company:   req.Company,
		Email:     req.Email,
		Phone:     req.Phone,
		Product:   req.Product,
		Message:   req.Message,
		Status:    domain.LeadStatusNew,
		CreatedAt: time.Now().UTC(),
	}

	if err := domain.ValidateQuote(quote); err != nil {
		BadRequest(w, err.Error())
		return
	}

	if err := h.leadRepo.CreateQuote(r.Context(), quote); err != nil {
		InternalError(w, h.logger, err)
		return
	}

	subject, body := mailer.QuoteEmail(quote)
	result := h.notifyLead(r.Context(), domain.LeadKindQuote, quote.ID, subject, body)

	Created(w, LeadSubmittedResponse{ID: quote.ID, Email: result})
}

// ListQuotes возвращает запросы предложений (админ-листинг).
// GET /api/v1/quotes?status=...&limit=...&offset=...
func (h *Handler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.leadRepo.ListQuotes(r.Context(), leadFilterFromQuery(r))
	if HandleRepoError(w, h.logger, err, "") {
		return
	}

	result := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		result[i] = QuoteFromDomain(q)
	}

	List(w, result, len(result))
}

// GetQuote возвращает запрос предложения по ID.
// GET /api/v1/quotes/{id}
func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid quote id")
		return
	}

	quote, err := h.leadRepo.GetQuoteByID(r.Context(), id)
	if HandleRepoError(w, h.logger, err, "quote request not found") {
		return
	}

	Success(w, QuoteFromDomain(*quote))
}

// CreateContact принимает сообщение обратной связи.
// POST /api/v1/contacts
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	contact := &domain.ContactMessage{
		ID:        uuid.New(),
		Name:      req.Name,
		Company:   req.Company,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Interest:  req.Interest,
		Status:    domain.LeadStatusNew,
		CreatedAt: time.Now().UTC(),
	}

	if err := domain.ValidateContact(contact); err != nil {
		BadRequest(w, err.Error())
		return
	}

	if err := h.leadRepo.CreateContact(r.Context(), contact); err != nil {
		InternalError(w, h.logger, err)
		return
	}

	subject, body := mailer.ContactEmail(contact)
	result := h.notifyLead(r.Context(), domain.LeadKindContact, contact.ID, subject, body)

	Created(w, LeadSubmittedResponse{ID: contact.ID, Email: result})
}

// ListContacts возвращает сообщения обратной связи (админ-листинг).
// GET /api/v1/contacts?status=...&limit=...&offset=...
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.leadRepo.ListContacts(r.Context(), leadFilterFromQuery(r))
	if HandleRepoError(w, h.logger, err, "") {
		return
	}

	result := make([]ContactResponse, len(contacts))
	for i, c := range contacts {
		result[i] = ContactFromDomain(c)
	}

	List(w, result, len(result))
}

// GetContact возвращает сообщение обратной связи по ID.
// GET /api/v1/contacts/{id}
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid contact id")
		return
	}

	contact, err := h.leadRepo.GetContactByID(r.Context(), id)
	if HandleRepoError(w, h.logger, err, "contact message not found") {
		return
	}

	Success(w, ContactFromDomain(*contact))
}

// notifyLead отправляет уведомление о заявке.
//
// Если настроен publisher, событие публикуется в очередь и письмо
// отправит notifier. Иначе (или при сбое публикации) — синхронная
// best-effort отправка через mailer. Ошибки никогда не роняют запрос.
func (h *Handler) notifyLead(ctx context.Context, kind domain.LeadKind, leadID uuid.UUID, subject, body string) mailer.Result {
	if h.publisher != nil {
		err := h.publisher.PublishLeadCreated(ctx, kind, leadID)
		if err == nil {
			return mailer.Result{Sent: false, Detail: "queued for delivery"}
		}
		h.logger.Warn("failed to publish lead event, sending directly",
			"kind", kind, "lead_id", leadID, "error", err)
	}

	result := h.mailer.Send(subject, body)
	if result.Sent {
		if err := h.leadRepo.MarkNotified(ctx, kind, leadID); err != nil {
			h.logger.Warn("failed to mark lead notified",
				"kind", kind, "lead_id", leadID, "error", err)
		}
	}
	return result
}

// leadFilterFromQuery строит фильтр заявок из query-параметров.
func leadFilterFromQuery(r *http.Request) repo.LeadFilter {
	query := r.URL.Query()
	return repo.LeadFilter{
		Status: domain.LeadStatus(query.Get("status")),
		Limit:  int(mustParseInt(query.Get("limit"), defaultListLimit)),
		Offset: int(mustParseInt(query.Get("offset"), 0)),
	}
}
