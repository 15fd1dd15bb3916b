package domain

import (
	"errors"
	"testing"
)

func validProduct() *Product {
	return &Product{
		Title:    "Birch Plywood 18mm",
		Category: "Timber & Plywood",
	}
}

func TestValidateProduct(t *testing.T) {
	if err := ValidateProduct(validProduct()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateProduct_EmptyTitle(t *testing.T) {
	p := validProduct()
	p.Title = "   "

	err := ValidateProduct(p)
	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}

	// Ошибка должна указывать на поле
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Field != "title" {
		t.Errorf("expected field 'title', got %q", verr.Field)
	}
}

func TestValidateProduct_Category(t *testing.T) {
	p := validProduct()
	p.Category = ""
	if err := ValidateProduct(p); !errors.Is(err, ErrEmptyCategory) {
		t.Errorf("expected ErrEmptyCategory, got %v", err)
	}

	p.Category = "Magic Dust"
	if err := ValidateProduct(p); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}

	// Все категории из списка валидны
	for _, c := range Categories {
		p.Category = c
		if err := ValidateProduct(p); err != nil {
			t.Errorf("category %q: unexpected error: %v", c, err)
		}
	}
}

func TestValidateProject(t *testing.T) {
	if err := ValidateProject(&Project{Title: "Warehouse Extension"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ValidateProject(&Project{}); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestValidateQuote(t *testing.T) {
	q := &QuoteRequest{Name: "Omar", Email: "omar@example.com"}
	if err := ValidateQuote(q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Сообщение и товар необязательны
	q.Message = ""
	q.Product = ""
	if err := ValidateQuote(q); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateQuote_Email(t *testing.T) {
	tests := []struct {
		email   string
		wantErr error
	}{
		{"", ErrEmptyEmail},
		{"   ", ErrEmptyEmail},
		{"not-an-email", ErrInvalidEmail},
		{"missing@tld@double", ErrInvalidEmail},
		{"Omar <omar@example.com>", ErrInvalidEmail}, // только голый адрес
		{"omar@example.com", nil},
	}

	for _, tt := range tests {
		q := &QuoteRequest{Name: "Omar", Email: tt.email}
		err := ValidateQuote(q)

		if tt.wantErr == nil {
			if err != nil {
				t.Errorf("email %q: unexpected error: %v", tt.email, err)
			}
			continue
		}

		if !errors.Is(err, tt.wantErr) {
			t.Errorf("email %q: expected %v, got %v", tt.email, tt.wantErr, err)
		}
	}
}

func TestValidateContact(t *testing.T) {
	c := &ContactMessage{
		Name:    "Sara",
		Email:   "sara@example.com",
		Message: "Please call me back",
	}
	if err := ValidateContact(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Для contact текст сообщения обязателен
	c.Message = ""
	if err := ValidateContact(c); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}

	c.Message = "hi"
	c.Name = ""
	if err := ValidateContact(c); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestLeadStatus_IsTerminal(t *testing.T) {
	if LeadStatusNew.IsTerminal() {
		t.Error("NEW should not be terminal")
	}
	if !LeadStatusNotified.IsTerminal() {
		t.Error("NOTIFIED should be terminal")
	}
}
