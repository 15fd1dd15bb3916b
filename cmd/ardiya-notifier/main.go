// Ardiya Notifier — отправляет email-уведомления о заявках.
//
// Notifier:
//   - Получает события lead.created из RabbitMQ
//   - Периодически проверяет заявки в статусе NEW в БД (fallback)
//   - Отправляет письмо менеджеру и помечает заявку NOTIFIED
//
// Несколько экземпляров могут работать параллельно.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diwanalardiya/ardiya/internal/mailer"
	"github.com/diwanalardiya/ardiya/internal/mq"
	"github.com/diwanalardiya/ardiya/internal/notify"
	"github.com/diwanalardiya/ardiya/internal/repo"
	"github.com/diwanalardiya/ardiya/internal/telemetry"
)

func main() {
	// Инициализируем structured logging
	logger := telemetry.SetupLogger()
	logger.Info("starting ardiya-notifier")

	// graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// DB pool
	pool, err := repo.NewPool(ctx)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("database connected")

	leadRepo := repo.NewLeadRepo(pool)

	// SMTP mailer
	mailCfg := mailer.ConfigFromEnv()
	if !mailCfg.Configured() {
		logger.Warn("SMTP not configured, notifier will only log leads")
	}
	m := mailer.New(mailCfg, logger)

	// RabbitMQ
	var mqConn *mq.Connection
	mqURL := os.Getenv("RABBITMQ_URL")
	if mqURL == "" {
		mqURL = mq.DefaultURL()
	}

	mqConn, err = mq.NewConnection(mqURL, logger)
	if err != nil {
		logger.Warn("RabbitMQ not available, running in polling-only mode", "error", err)
	} else {
		defer mqConn.Close()
		logger.Info("RabbitMQ connected")

		// Создаём топологию
		if err := mq.SetupTopology(ctx, mqConn); err != nil {
			logger.Warn("failed to setup topology", "error", err)
		}
	}

	// Создаём notifier
	n := notify.New(notify.Config{
		LeadRepo: leadRepo,
		Mailer:   m,
		Conn:     mqConn,
		Logger:   logger,
	})

	// Запускаем notifier
	if err := n.Start(ctx); err != nil {
		logger.Error("failed to start notifier", "error", err)
		os.Exit(1)
	}

	// HTTP mux: /healthz + /metrics
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	port := ":8082"
	if v := os.Getenv("NOTIFIER_PORT"); v != "" {
		port = ":" + v
	}

	go func() {
		logger.Info("listening", "addr", port)
		if err := http.ListenAndServe(port, mux); err != nil {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	// Ожидаем сигнал завершения
	<-ctx.Done()

	// Останавливаем notifier
	n.Stop()
	logger.Info("ardiya-notifier stopped")
}
