// Ardiya API — HTTP-сервис каталога и заявок.
//
// API обслуживает:
//   - публичный каталог товаров и портфолио проектов
//   - приём заявок с форм сайта (запрос предложения, обратная связь)
//   - админ-листинги заявок
//
// Уведомления о заявках публикуются в RabbitMQ; при недоступности
// брокера письма отправляются синхронно через SMTP.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diwanalardiya/ardiya/internal/api"
	"github.com/diwanalardiya/ardiya/internal/mailer"
	"github.com/diwanalardiya/ardiya/internal/mq"
	"github.com/diwanalardiya/ardiya/internal/repo"
	"github.com/diwanalardiya/ardiya/internal/telemetry"
)

var (
	startTime   = time.Now()
	healthTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ardiya_api_health_checks_total",
		Help: "Health check requests handled by ardiya-api",
	})
)

func main() {
	// Инициализируем structured logging
	logger := telemetry.SetupLogger()
	logger.Info("starting ardiya-api")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Подключаемся к базе данных
	pool, err := repo.NewPool(ctx)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Создаём репозитории
	productRepo := repo.NewProductRepo(pool)
	projectRepo := repo.NewProjectRepo(pool)
	leadRepo := repo.NewLeadRepo(pool)

	// RabbitMQ опционален: без него заявки уведомляются синхронно
	var publisher *mq.Publisher
	mqURL := os.Getenv("RABBITMQ_URL")
	if mqURL == "" {
		mqURL = mq.DefaultURL()
	}

	mqConn, err := mq.NewConnection(mqURL, logger)
	if err != nil {
		logger.Warn("RabbitMQ not available, lead emails will be sent synchronously", "error", err)
	} else {
		defer mqConn.Close()
		logger.Info("RabbitMQ connected")

		if err := mq.SetupTopology(ctx, mqConn); err != nil {
			logger.Warn("failed to setup topology", "error", err)
		}

		publisher = mq.NewPublisher(mqConn, logger)
	}

	// SMTP mailer для синхронного fallback
	mailCfg := mailer.ConfigFromEnv()
	if !mailCfg.Configured() {
		logger.Warn("SMTP not configured, leads will be logged to database only")
	}
	m := mailer.New(mailCfg, logger)

	// Создаём API handler
	handler := api.NewHandler(api.Config{
		ProductRepo: productRepo,
		ProjectRepo: projectRepo,
		LeadRepo:    leadRepo,
		Publisher:   publisher,
		Mailer:      m,
		Logger:      logger,
	})

	mux := http.NewServeMux()

	// Статус, health и metrics
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok","service":"ardiya-api"}`)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		healthTotal.Inc()
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok %s", time.Since(startTime))
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Регистрируем API маршруты
	handler.RegisterRoutes(mux)

	addr := ":8080"
	if v := os.Getenv("API_PORT"); v != "" {
		addr = ":" + v
	}

	// Создаём HTTP сервер с возможностью graceful shutdown
	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Запускаем сервер в горутине
	go func() {
		logger.Info("listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	// Graceful shutdown с таймаутом 10 секунд
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("stopped")
}
