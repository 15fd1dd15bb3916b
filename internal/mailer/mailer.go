// Package mailer отправляет email-уведомления о заявках.
//
// Отправка — best-effort: ошибки SMTP не прерывают обработку заявки,
// результат возвращается в виде Result и попадает в ответ API и в логи.
package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"os"
	"strconv"
	"strings"
)

// Config — конфигурация SMTP из переменных окружения.
type Config struct {
	Host string
	Port int
	User string
	Pass string
	To   string
	From string
}

// ConfigFromEnv читает конфигурацию из окружения:
// SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS, EMAIL_TO, EMAIL_FROM.
//
// EMAIL_FROM по умолчанию — SMTP_USER, затем noreply@example.com.
func ConfigFromEnv() Config {
	cfg := Config{
		Host: os.Getenv("SMTP_HOST"),
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		To:   os.Getenv("EMAIL_TO"),
		From: os.Getenv("EMAIL_FROM"),
	}

	if v := os.Getenv("SMTP_PORT"); v != "" {
		cfg.Port, _ = strconv.Atoi(v)
	}

	if cfg.From == "" {
		cfg.From = cfg.User
	}
	if cfg.From == "" {
		cfg.From = "noreply@example.com"
	}

	return cfg
}

// Configured возвращает true, если заданы хост, порт и получатель.
func (c Config) Configured() bool {
	return c.Host != "" && c.Port != 0 && c.To != ""
}

// Result — результат попытки отправки.
type Result struct {
	// Sent — письмо доставлено SMTP-серверу.
	Sent bool `json:"sent"`

	// Detail — человекочитаемое описание результата.
	Detail string `json:"detail"`
}

// Mailer отправляет письма через SMTP.
type Mailer struct {
	cfg    Config
	logger *slog.Logger
}

// New создаёт Mailer.
func New(cfg Config, logger *slog.Logger) *Mailer {
	return &Mailer{
		cfg:    cfg,
		logger: logger,
	}
}

// Configured сообщает, настроена ли отправка SMTP.
func (m *Mailer) Configured() bool {
	return m.cfg.Configured()
}

// Send отправляет письмо. Никогда не возвращает ошибку наружу:
// при ненастроенном SMTP или сбое отправки результат описывается в Result.
func (m *Mailer) Send(subject, body string) Result {
	if !m.cfg.Configured() {
		return Result{
			Sent:   false,
			Detail: "smtp not configured; lead logged to database only",
		}
	}

	msg := buildMessage(m.cfg.From, m.cfg.To, subject, body)

	var auth smtp.Auth
	if m.cfg.User != "" && m.cfg.Pass != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{m.cfg.To}, msg); err != nil {
		m.logger.Warn("email send failed", "to", m.cfg.To, "subject", subject, "error", err)
		return Result{
			Sent:   false,
			Detail: fmt.Sprintf("email error: %v", err),
		}
	}

	m.logger.Info("email sent", "to", m.cfg.To, "subject", subject)
	return Result{Sent: true, Detail: "email sent"}
}

// buildMessage собирает RFC 822 сообщение с plain-text телом.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
