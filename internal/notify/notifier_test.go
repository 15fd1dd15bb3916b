package notify

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/diwanalardiya/ardiya/internal/mailer"
)

func TestNew_Defaults(t *testing.T) {
	n := New(Config{Logger: slog.Default()})

	if n.pollInterval != defaultPollInterval {
		t.Errorf("expected poll interval %v, got %v", defaultPollInterval, n.pollInterval)
	}
	if n.batchSize != defaultBatchSize {
		t.Errorf("expected batch size %d, got %d", defaultBatchSize, n.batchSize)
	}
	if n.prefetch != defaultPrefetch {
		t.Errorf("expected prefetch %d, got %d", defaultPrefetch, n.prefetch)
	}
}

func TestNew_Overrides(t *testing.T) {
	n := New(Config{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
		Prefetch:     2,
		Logger:       slog.Default(),
	})

	if n.pollInterval != 5*time.Second {
		t.Errorf("expected 5s poll interval, got %v", n.pollInterval)
	}
	if n.batchSize != 10 {
		t.Errorf("expected batch size 10, got %d", n.batchSize)
	}
}

// Без настроенного SMTP заявки остаются NEW: ни опроса БД,
// ни накрутки attempts. leadRepo nil — любое обращение к нему упадёт.
func TestNotify_SMTPNotConfigured(t *testing.T) {
	n := New(Config{
		Mailer: mailer.New(mailer.Config{}, slog.Default()),
		Logger: slog.Default(),
	})

	if err := n.notify(context.Background(), "quote", uuid.New()); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestPollOnce_SMTPNotConfigured(t *testing.T) {
	n := New(Config{
		Mailer: mailer.New(mailer.Config{}, slog.Default()),
		Logger: slog.Default(),
	})

	n.pollOnce(context.Background())
}

func TestLoadLead_UnknownKind(t *testing.T) {
	n := New(Config{Logger: slog.Default()})

	_, _, _, err := n.loadLead(context.Background(), "parcel", uuid.New())
	if err == nil {
		t.Error("expected error for unknown lead kind")
	}
}
