package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/diwanalardiya/ardiya/internal/domain"
	"github.com/diwanalardiya/ardiya/internal/mailer"
	"github.com/diwanalardiya/ardiya/internal/mq"
	"github.com/diwanalardiya/ardiya/internal/repo"
)

// Default configuration values.
const (
	defaultPollInterval = 60 * time.Second
	defaultBatchSize    = 50
	defaultPrefetch     = 5
)

// Метрики notifier.
var (
	emailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ardiya_notifier_emails_sent_total",
		Help: "Lead notification emails sent, by lead kind",
	}, []string{"kind"})

	emailsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ardiya_notifier_emails_failed_total",
		Help: "Lead notification emails failed, by lead kind",
	}, []string{"kind"})
)

// ErrSendFailed — письмо не удалось доставить SMTP-серверу.
var ErrSendFailed = errors.New("email send failed")

// Notifier отправляет email-уведомления о заявках.
//
// Notifier — stateless компонент, который:
//   - Получает события lead.created из очередей RabbitMQ (event-driven)
//   - Периодически проверяет заявки в статусе NEW в БД (polling fallback)
//   - Отправляет письмо через mailer и помечает заявку NOTIFIED
//
// Несколько экземпляров могут потреблять из одних очередей.
type Notifier struct {
	leadRepo *repo.LeadRepo
	mailer   *mailer.Mailer
	conn     *mq.Connection

	pollInterval time.Duration
	batchSize    int
	prefetch     int

	logger     *slog.Logger
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// Config — конфигурация Notifier.
type Config struct {
	LeadRepo *repo.LeadRepo
	Mailer   *mailer.Mailer

	// Conn — соединение с RabbitMQ. Может быть nil:
	// тогда notifier работает только в режиме опроса БД.
	Conn *mq.Connection

	// PollInterval — период опроса БД (по умолчанию 60s).
	PollInterval time.Duration

	// BatchSize — размер пачки при опросе (по умолчанию 50).
	BatchSize int

	// Prefetch — prefetch потребителей очередей (по умолчанию 5).
	Prefetch int

	Logger *slog.Logger
}

// New создаёт Notifier.
func New(cfg Config) *Notifier {
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	prefetch := cfg.Prefetch
	if prefetch <= 0 {
		prefetch = defaultPrefetch
	}

	return &Notifier{
		leadRepo:     cfg.LeadRepo,
		mailer:       cfg.Mailer,
		conn:         cfg.Conn,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		prefetch:     prefetch,
		logger:       cfg.Logger,
	}
}

// Start запускает потребителей очередей и цикл опроса БД.
// Не блокируется; остановка — через Stop.
func (n *Notifier) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	n.cancelFunc = cancel

	if n.conn != nil {
		n.startConsumer(ctx, mq.QueueLeadsQuote)
		n.startConsumer(ctx, mq.QueueLeadsContact)
	} else {
		n.logger.Info("no MQ connection, polling-only mode")
	}

	n.wg.Add(1)
	go n.pollLoop(ctx)

	return nil
}

// Stop останавливает notifier и дожидается завершения горутин.
func (n *Notifier) Stop() {
	if n.cancelFunc != nil {
		n.cancelFunc()
	}
	n.wg.Wait()
	n.logger.Info("notifier stopped")
}

// startConsumer запускает потребителя одной очереди.
func (n *Notifier) startConsumer(ctx context.Context, queue mq.Queue) {
	consumer := mq.NewConsumer(n.conn, n.logger, mq.ConsumerConfig{
		Queue:    queue,
		Handler:  n.handleLeadCreated,
		Prefetch: n.prefetch,
	})

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			n.logger.Error("consumer stopped", "queue", queue, "error", err)
		}
	}()
}

// handleLeadCreated обрабатывает событие lead.created.
// Ошибка приводит к nack и уходу сообщения в DLQ.
func (n *Notifier) handleLeadCreated(ctx context.Context, msg *mq.Message) error {
	payload, err := msg.LeadCreated()
	if err != nil {
		return err
	}

	return n.notify(ctx, payload.Kind, payload.LeadID)
}

// notify загружает заявку, отправляет письмо и помечает её NOTIFIED.
//
// Уже уведомлённая заявка — не ошибка: событие могло быть доставлено
// повторно или заявку успел обработать polling.
func (n *Notifier) notify(ctx context.Context, kind domain.LeadKind, leadID uuid.UUID) error {
	logger := n.logger.With("kind", kind, "lead_id", leadID)

	// Без SMTP заявка остаётся NEW; счётчик попыток не накручиваем
	if !n.mailer.Configured() {
		logger.Debug("smtp not configured, leaving lead in NEW")
		return nil
	}

	subject, body, status, err := n.loadLead(ctx, kind, leadID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Warn("lead not found, skipping")
			return nil
		}
		return err
	}

	if status != domain.LeadStatusNew {
		logger.Debug("lead already notified, skipping")
		return nil
	}

	if err := n.leadRepo.BumpAttempts(ctx, kind, leadID); err != nil {
		logger.Warn("failed to bump attempts", "error", err)
	}

	result := n.mailer.Send(subject, body)
	if !result.Sent {
		emailsFailed.WithLabelValues(string(kind)).Inc()
		return fmt.Errorf("%w: %s", ErrSendFailed, result.Detail)
	}

	emailsSent.WithLabelValues(string(kind)).Inc()

	if err := n.leadRepo.MarkNotified(ctx, kind, leadID); err != nil {
		// Письмо уже ушло; повторная отправка хуже рассинхрона статуса
		logger.Warn("failed to mark lead notified", "error", err)
		return nil
	}

	logger.Info("lead notification sent")
	return nil
}

// loadLead загружает заявку нужного вида и рендерит письмо.
func (n *Notifier) loadLead(ctx context.Context, kind domain.LeadKind, leadID uuid.UUID) (subject, body string, status domain.LeadStatus, err error) {
	switch kind {
	case domain.LeadKindContact:
		contact, err := n.leadRepo.GetContactByID(ctx, leadID)
		if err != nil {
			return "", "", "", err
		}
		subject, body = mailer.ContactEmail(contact)
		return subject, body, contact.Status, nil

	case domain.LeadKindQuote:
		quote, err := n.leadRepo.GetQuoteByID(ctx, leadID)
		if err != nil {
			return "", "", "", err
		}
		subject, body = mailer.QuoteEmail(quote)
		return subject, body, quote.Status, nil

	default:
		return "", "", "", fmt.Errorf("unknown lead kind: %s", kind)
	}
}

// pollLoop периодически обрабатывает неуведомлённые заявки.
// Подхватывает заявки, созданные при недоступном RabbitMQ.
func (n *Notifier) pollLoop(ctx context.Context) {
	defer n.wg.Done()

	ticker := time.NewTicker(n.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.pollOnce(ctx)
		}
	}
}

// pollOnce обрабатывает одну пачку заявок в статусе NEW.
func (n *Notifier) pollOnce(ctx context.Context) {
	if !n.mailer.Configured() {
		return
	}

	quotes, err := n.leadRepo.ListUnnotifiedQuotes(ctx, n.batchSize)
	if err != nil {
		n.logger.Error("poll quotes failed", "error", err)
	}
	for _, q := range quotes {
		if err := n.notify(ctx, domain.LeadKindQuote, q.ID); err != nil {
			n.logger.Warn("poll notify failed", "kind", domain.LeadKindQuote, "lead_id", q.ID, "error", err)
		}
	}

	contacts, err := n.leadRepo.ListUnnotifiedContacts(ctx, n.batchSize)
	if err != nil {
		n.logger.Error("poll contacts failed", "error", err)
	}
	for _, c := range contacts {
		if err := n.notify(ctx, domain.LeadKindContact, c.ID); err != nil {
			n.logger.Warn("poll notify failed", "kind", domain.LeadKindContact, "lead_id", c.ID, "error", err)
		}
	}
}
