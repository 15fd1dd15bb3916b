package cli

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/products" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("category"); got != "Steel & Rebar" {
			t.Errorf("unexpected category param: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"p1","title":"Rebar 12mm","category":"Steel & Rebar","is_active":true,"created_at":"2024-01-01T00:00:00Z"}],"total":1}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	products, err := client.ListProducts(ListProductsOpts{Category: "Steel & Rebar"})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].Title != "Rebar 12mm" {
		t.Errorf("unexpected title: %q", products[0].Title)
	}
}

func TestClientGetQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/quotes/q1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"q1","name":"Ali","email":"ali@example.com","status":"NEW","attempts":0,"created_at":"2024-01-01T00:00:00Z"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	quote, err := client.GetQuote("q1")
	if err != nil {
		t.Fatalf("GetQuote: %v", err)
	}
	if quote.Status != "NEW" {
		t.Errorf("unexpected status: %q", quote.Status)
	}
}

func TestClientErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"product not found"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.GetProduct("missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "NOT_FOUND") {
		t.Errorf("error should contain code, got: %v", err)
	}
}

func TestClientDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method: %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if err := client.DeleteProduct("p1"); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("short string should pass through, got %q", got)
	}
	if got := truncate("a very long product title here", 10); got != "a very ..." {
		t.Errorf("unexpected truncation: %q", got)
	}
	if len(truncate("a very long product title here", 10)) != 10 {
		t.Error("truncated string should be exactly max length")
	}
}
