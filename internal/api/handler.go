package api

import (
	"log/slog"

	"github.com/diwanalardiya/ardiya/internal/mailer"
	"github.com/diwanalardiya/ardiya/internal/mq"
	"github.com/diwanalardiya/ardiya/internal/repo"
)

// Handler — главный обработчик API с зависимостями.
//
// Publisher может быть nil: тогда уведомления о заявках отправляются
// синхронно через Mailer, без очереди.
type Handler struct {
	productRepo *repo.ProductRepo
	projectRepo *repo.ProjectRepo
	leadRepo    *repo.LeadRepo
	publisher   *mq.Publisher
	mailer      *mailer.Mailer
	logger      *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	ProductRepo *repo.ProductRepo
	ProjectRepo *repo.ProjectRepo
	LeadRepo    *repo.LeadRepo
	Publisher   *mq.Publisher
	Mailer      *mailer.Mailer
	Logger      *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		productRepo: cfg.ProductRepo,
		projectRepo: cfg.ProjectRepo,
		leadRepo:    cfg.LeadRepo,
		publisher:   cfg.Publisher,
		mailer:      cfg.Mailer,
		logger:      cfg.Logger,
	}
}
