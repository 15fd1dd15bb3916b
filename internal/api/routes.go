package api

import (
	"net/http"
)

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Middleware chain
	chain := Chain(
		Recovery(h.logger),
		Logging(h.logger),
		CORS(),
		Metrics(),
	)

	// Catalog
	mux.Handle("GET /api/v1/categories", chain(http.HandlerFunc(h.ListCategories)))
	mux.Handle("GET /api/v1/products", chain(http.HandlerFunc(h.ListProducts)))
	mux.Handle("POST /api/v1/products", chain(http.HandlerFunc(h.CreateProduct)))
	mux.Handle("GET /api/v1/products/{id}", chain(http.HandlerFunc(h.GetProduct)))
	mux.Handle("PUT /api/v1/products/{id}", chain(http.HandlerFunc(h.UpdateProduct)))
	mux.Handle("DELETE /api/v1/products/{id}", chain(http.HandlerFunc(h.DeleteProduct)))

	// Portfolio
	mux.Handle("GET /api/v1/projects", chain(http.HandlerFunc(h.ListProjects)))
	mux.Handle("POST /api/v1/projects", chain(http.HandlerFunc(h.CreateProject)))
	mux.Handle("GET /api/v1/projects/{id}", chain(http.HandlerFunc(h.GetProject)))
	mux.Handle("PUT /api/v1/projects/{id}", chain(http.HandlerFunc(h.UpdateProject)))
	mux.Handle("DELETE /api/v1/projects/{id}", chain(http.HandlerFunc(h.DeleteProject)))

	// Leads
	mux.Handle("POST /api/v1/quotes", chain(http.HandlerFunc(h.CreateQuote)))
	mux.Handle("GET /api/v1/quotes", chain(http.HandlerFunc(h.ListQuotes)))
	mux.Handle("GET /api/v1/quotes/{id}", chain(http.HandlerFunc(h.GetQuote)))
	mux.Handle("POST /api/v1/contacts", chain(http.HandlerFunc(h.CreateContact)))
	mux.Handle("GET /api/v1/contacts", chain(http.HandlerFunc(h.ListContacts)))
	mux.Handle("GET /api/v1/contacts/{id}", chain(http.HandlerFunc(h.GetContact)))

	// Формы отправляются браузером с другого origin — нужен preflight
	mux.Handle("OPTIONS /api/v1/", chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))
}
