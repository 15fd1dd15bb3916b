package mailer

import (
	"log/slog"
	"strings"
	"testing"
)

func TestConfig_Configured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"empty", Config{}, false},
		{"no port", Config{Host: "smtp.example.com", To: "sales@example.com"}, false},
		{"no recipient", Config{Host: "smtp.example.com", Port: 465}, false},
		{"full", Config{Host: "smtp.example.com", Port: 465, To: "sales@example.com"}, true},
	}

	for _, tt := range tests {
		if got := tt.cfg.Configured(); got != tt.want {
			t.Errorf("%s: Configured() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSend_NotConfigured(t *testing.T) {
	m := New(Config{}, slog.Default())

	res := m.Send("New Quote Request", "body")
	if res.Sent {
		t.Error("expected Sent=false without SMTP config")
	}
	if !strings.Contains(res.Detail, "not configured") {
		t.Errorf("unexpected detail: %q", res.Detail)
	}
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("noreply@example.com", "sales@example.com",
		"New Contact Message", "Name: Sara\n\nMessage:\nhello"))

	// Заголовки и тело разделены пустой строкой
	parts := strings.SplitN(msg, "\r\n\r\n", 2)
	if len(parts) != 2 {
		t.Fatalf("message has no header/body separator: %q", msg)
	}

	headers, body := parts[0], parts[1]
	for _, want := range []string{
		"From: noreply@example.com",
		"To: sales@example.com",
		"Subject: New Contact Message",
		"Content-Type: text/plain",
	} {
		if !strings.Contains(headers, want) {
			t.Errorf("headers missing %q", want)
		}
	}

	if body != "Name: Sara\n\nMessage:\nhello" {
		t.Errorf("unexpected body: %q", body)
	}
}
