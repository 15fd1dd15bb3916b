package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// serveRequest прогоняет запрос через полный набор маршрутов.
// Репозитории nil: проверяемые пути отвечают до обращения к БД.
func serveRequest(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(Config{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// decodeError разбирает конверт {"error":{"code","message"}}.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (code, message string) {
	t.Helper()

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	return resp.Error.Code, resp.Error.Message
}

func TestGetProductInvalidID(t *testing.T) {
	rec := serveRequest(t, http.MethodGet, "/api/v1/products/not-a-uuid", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	code, message := decodeError(t, rec)
	if code != "BAD_REQUEST" {
		t.Errorf("expected BAD_REQUEST, got %q", code)
	}
	if message != "invalid product id" {
		t.Errorf("unexpected message: %q", message)
	}
}

func TestCreateQuoteInvalidEmail(t *testing.T) {
	body := `{"name":"Ali","email":"not-an-email","message":"need rebar"}`
	rec := serveRequest(t, http.MethodPost, "/api/v1/quotes", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	code, message := decodeError(t, rec)
	if code != "BAD_REQUEST" {
		t.Errorf("expected BAD_REQUEST, got %q", code)
	}
	if !strings.Contains(message, "email") {
		t.Errorf("message should name the email field, got %q", message)
	}
}

func TestCreateContactMissingMessage(t *testing.T) {
	body := `{"name":"Ali","email":"ali@example.com"}`
	rec := serveRequest(t, http.MethodPost, "/api/v1/contacts", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	code, message := decodeError(t, rec)
	if code != "BAD_REQUEST" {
		t.Errorf("expected BAD_REQUEST, got %q", code)
	}
	if !strings.Contains(message, "message") {
		t.Errorf("message should name the missing field, got %q", message)
	}
}

func TestCreateProductUnknownCategory(t *testing.T) {
	body := `{"title":"Rebar 12mm","category":"Groceries"}`
	rec := serveRequest(t, http.MethodPost, "/api/v1/products", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	code, message := decodeError(t, rec)
	if code != "BAD_REQUEST" {
		t.Errorf("expected BAD_REQUEST, got %q", code)
	}
	if !strings.Contains(message, "category") {
		t.Errorf("message should name the category field, got %q", message)
	}
}

func TestCreateProductMalformedBody(t *testing.T) {
	rec := serveRequest(t, http.MethodPost, "/api/v1/products", "{not json")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	code, _ := decodeError(t, rec)
	if code != "BAD_REQUEST" {
		t.Errorf("expected BAD_REQUEST, got %q", code)
	}
}
