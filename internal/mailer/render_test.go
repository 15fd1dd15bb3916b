package mailer

import (
	"strings"
	"testing"

	"github.com/diwanalardiya/ardiya/internal/domain"
)

func TestQuoteEmail(t *testing.T) {
	q := &domain.QuoteRequest{
		Name:    "Omar",
		Email:   "omar@example.com",
		Product: "Birch Plywood 18mm",
	}

	subject, body := QuoteEmail(q)
	if subject != "New Quote Request" {
		t.Errorf("unexpected subject: %q", subject)
	}

	for _, want := range []string{
		"Name: Omar",
		"Email: omar@example.com",
		"Product: Birch Plywood 18mm",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}

	// Незаполненные поля заменяются на "-"
	for _, want := range []string{"Company: -", "Phone: -", "Message:\n-"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing placeholder %q:\n%s", want, body)
		}
	}
}

func TestContactEmail(t *testing.T) {
	c := &domain.ContactMessage{
		Name:     "Sara",
		Email:    "sara@example.com",
		Message:  "Please call me back",
		Interest: "HVAC & Installation",
	}

	subject, body := ContactEmail(c)
	if subject != "New Contact Message" {
		t.Errorf("unexpected subject: %q", subject)
	}

	for _, want := range []string{
		"Name: Sara",
		"Interest: HVAC & Installation",
		"Message:\nPlease call me back",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}
