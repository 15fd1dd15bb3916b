package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diwanalardiya/ardiya/internal/domain"
)

// LeadRepo — репозиторий для заявок с сайта (quotes и contacts).
//
// Таблица quote_requests:
//
//	id UUID PK, name TEXT, company TEXT, email TEXT, phone TEXT,
//	product TEXT, message TEXT, status TEXT, attempts INT,
//	notified_at TIMESTAMPTZ NULL, created_at TIMESTAMPTZ
//
// Таблица contact_messages — то же, но вместо product — interest.
type LeadRepo struct {
	pool *pgxpool.Pool
}

// NewLeadRepo создаёт новый LeadRepo.
func NewLeadRepo(pool *pgxpool.Pool) *LeadRepo {
	return &LeadRepo{pool: pool}
}

// LeadFilter — фильтр для админ-листинга заявок.
type LeadFilter struct {
	Status domain.LeadStatus
	Limit  int
	Offset int
}

// --- Quote requests ---

// CreateQuote сохраняет запрос коммерческого предложения.
func (r *LeadRepo) CreateQuote(ctx context.Context, q *domain.QuoteRequest) error {
	query := `
		INSERT INTO quote_requests (
			id, name, company, email, phone, product, message,
			status, attempts, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		q.ID,
		q.Name,
		q.Company,
		q.Email,
		q.Phone,
		q.Product,
		q.Message,
		string(q.Status),
		q.Attempts,
		q.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote request: %w", err)
	}
	return nil
}

// GetQuoteByID возвращает запрос предложения по ID.
func (r *LeadRepo) GetQuoteByID(ctx context.Context, id uuid.UUID) (*domain.QuoteRequest, error) {
	query := quoteSelect + ` WHERE id = $1`

	var q domain.QuoteRequest
	var statusStr string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&q.ID,
		&q.Name,
		&q.Company,
		&q.Email,
		&q.Phone,
		&q.Product,
		&q.Message,
		&statusStr,
		&q.Attempts,
		&q.NotifiedAt,
		&q.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get quote request: %w", err)
	}

	q.Status = domain.LeadStatus(statusStr)
	return &q, nil
}

// ListQuotes возвращает запросы предложений, новые первыми.
func (r *LeadRepo) ListQuotes(ctx context.Context, filter LeadFilter) ([]domain.QuoteRequest, error) {
	query, args := buildLeadQuery(quoteSelect, filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quote requests: %w", err)
	}
	defer rows.Close()

	var quotes []domain.QuoteRequest
	for rows.Next() {
		var q domain.QuoteRequest
		var statusStr string
		if err := rows.Scan(
			&q.ID,
			&q.Name,
			&q.Company,
			&q.Email,
			&q.Phone,
			&q.Product,
			&q.Message,
			&statusStr,
			&q.Attempts,
			&q.NotifiedAt,
			&q.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quote request: %w", err)
		}
		q.Status = domain.LeadStatus(statusStr)
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// --- Contact messages ---

// CreateContact сохраняет сообщение обратной связи.
func (r *LeadRepo) CreateContact(ctx context.Context, c *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (
			id, name, company, email, phone, message, interest,
			status, attempts, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Company,
		c.Email,
		c.Phone,
		c.Message,
		c.Interest,
		string(c.Status),
		c.Attempts,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// GetContactByID возвращает сообщение обратной связи по ID.
func (r *LeadRepo) GetContactByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	query := contactSelect + ` WHERE id = $1`

	var c domain.ContactMessage
	var statusStr string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Company,
		&c.Email,
		&c.Phone,
		&c.Message,
		&c.Interest,
		&statusStr,
		&c.Attempts,
		&c.NotifiedAt,
		&c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact message: %w", err)
	}

	c.Status = domain.LeadStatus(statusStr)
	return &c, nil
}

// ListContacts возвращает сообщения обратной связи, новые первыми.
func (r *LeadRepo) ListContacts(ctx context.Context, filter LeadFilter) ([]domain.ContactMessage, error) {
	query, args := buildLeadQuery(contactSelect, filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var contacts []domain.ContactMessage
	for rows.Next() {
		var c domain.ContactMessage
		var statusStr string
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Company,
			&c.Email,
			&c.Phone,
			&c.Message,
			&c.Interest,
			&statusStr,
			&c.Attempts,
			&c.NotifiedAt,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		c.Status = domain.LeadStatus(statusStr)
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// --- Уведомления ---

// MarkNotified переводит заявку NEW → NOTIFIED.
// Возвращает ErrInvalidState, если заявка уже уведомлена или не существует.
func (r *LeadRepo) MarkNotified(ctx context.Context, kind domain.LeadKind, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = 'NOTIFIED', notified_at = NOW()
		WHERE id = $1 AND status = 'NEW'
	`, leadTable(kind))

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark notified: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrInvalidState
	}
	return nil
}

// BumpAttempts увеличивает счётчик попыток отправки уведомления.
func (r *LeadRepo) BumpAttempts(ctx context.Context, kind domain.LeadKind, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET attempts = attempts + 1
		WHERE id = $1
	`, leadTable(kind))

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("bump attempts: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListUnnotifiedQuotes возвращает запросы в статусе NEW (для polling fallback).
func (r *LeadRepo) ListUnnotifiedQuotes(ctx context.Context, limit int) ([]domain.QuoteRequest, error) {
	return r.ListQuotes(ctx, LeadFilter{Status: domain.LeadStatusNew, Limit: limit})
}

// ListUnnotifiedContacts возвращает сообщения в статусе NEW (для polling fallback).
func (r *LeadRepo) ListUnnotifiedContacts(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	return r.ListContacts(ctx, LeadFilter{Status: domain.LeadStatusNew, Limit: limit})
}

// --- Вспомогательные методы ---

const quoteSelect = `
	SELECT id, name, company, email, phone, product, message,
	       status, attempts, notified_at, created_at
	FROM quote_requests
`

const contactSelect = `
	SELECT id, name, company, email, phone, message, interest,
	       status, attempts, notified_at, created_at
	FROM contact_messages
`

// leadTable возвращает имя таблицы для вида заявки.
func leadTable(kind domain.LeadKind) string {
	if kind == domain.LeadKindContact {
		return "contact_messages"
	}
	return "quote_requests"
}

// buildLeadQuery достраивает фильтр, сортировку и пагинацию к SELECT.
func buildLeadQuery(base string, filter LeadFilter) (string, []any) {
	var args []any
	query := base

	if filter.Status != "" {
		query += " WHERE status = $1"
		args = append(args, string(filter.Status))
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	return query, args
}
