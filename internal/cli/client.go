package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// --- Response types (дублируются из api/dto.go, CLI не импортирует internal/api) ---

// ProductResponse — товар из API.
type ProductResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Category     string         `json:"category"`
	MaterialType string         `json:"material_type,omitempty"`
	Size         string         `json:"size,omitempty"`
	Weight       string         `json:"weight,omitempty"`
	Images       []string       `json:"images"`
	Specs        map[string]any `json:"specs,omitempty"`
	IsActive     bool           `json:"is_active"`
	CreatedAt    string         `json:"created_at"`
}

// ProjectResponse — проект из API.
type ProjectResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	MaterialsUsed []string `json:"materials_used"`
	Images        []string `json:"images"`
	IsFeatured    bool     `json:"is_featured"`
	IsActive      bool     `json:"is_active"`
	CreatedAt     string   `json:"created_at"`
}

// QuoteResponse — запрос предложения из API.
type QuoteResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Company    string `json:"company,omitempty"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Product    string `json:"product,omitempty"`
	Message    string `json:"message,omitempty"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	NotifiedAt string `json:"notified_at,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// ContactResponse — сообщение обратной связи из API.
type ContactResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Company    string `json:"company,omitempty"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Message    string `json:"message"`
	Interest   string `json:"interest,omitempty"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	NotifiedAt string `json:"notified_at,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// --- Request types ---

// CreateProductRequest — создание товара.
type CreateProductRequest struct {
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Category     string         `json:"category"`
	MaterialType string         `json:"material_type,omitempty"`
	Size         string         `json:"size,omitempty"`
	Weight       string         `json:"weight,omitempty"`
	Images       []string       `json:"images,omitempty"`
	Specs        map[string]any `json:"specs,omitempty"`
}

// UpdateProductRequest — обновление товара.
type UpdateProductRequest struct {
	Title        *string        `json:"title,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Category     *string        `json:"category,omitempty"`
	MaterialType *string        `json:"material_type,omitempty"`
	Size         *string        `json:"size,omitempty"`
	Weight       *string        `json:"weight,omitempty"`
	Images       []string       `json:"images,omitempty"`
	Specs        map[string]any `json:"specs,omitempty"`
	IsActive     *bool          `json:"is_active,omitempty"`
}

// CreateProjectRequest — создание проекта.
type CreateProjectRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	MaterialsUsed []string `json:"materials_used,omitempty"`
	Images        []string `json:"images,omitempty"`
	IsFeatured    bool     `json:"is_featured,omitempty"`
}

// UpdateProjectRequest — обновление проекта.
type UpdateProjectRequest struct {
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	MaterialsUsed []string `json:"materials_used,omitempty"`
	Images        []string `json:"images,omitempty"`
	IsFeatured    *bool    `json:"is_featured,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// ListProductsOpts — параметры фильтрации товаров.
type ListProductsOpts struct {
	Category        string
	MaterialType    string
	Size            string
	Query           string
	IncludeInactive bool
	Limit           int
}

// ListProjectsOpts — параметры фильтрации проектов.
type ListProjectsOpts struct {
	Featured        bool
	IncludeInactive bool
	Limit           int
}

// ListLeadsOpts — параметры фильтрации заявок и сообщений.
type ListLeadsOpts struct {
	Status string
	Limit  int
}

// --- API response wrappers ---

type dataResponse struct {
	Data json.RawMessage `json:"data"`
}

type listResponse struct {
	Data  json.RawMessage `json:"data"`
	Total int             `json:"total"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// --- Client ---

// Client — HTTP-клиент для Ardiya API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Products ---

// ListCategories возвращает список категорий каталога.
func (c *Client) ListCategories() ([]string, error) {
	var categories []string
	err := c.list("/api/v1/categories", nil, &categories)
	return categories, err
}

// ListProducts возвращает товары с фильтрацией.
func (c *Client) ListProducts(opts ListProductsOpts) ([]ProductResponse, error) {
	params := url.Values{}
	if opts.Category != "" {
		params.Set("category", opts.Category)
	}
	if opts.MaterialType != "" {
		params.Set("material_type", opts.MaterialType)
	}
	if opts.Size != "" {
		params.Set("size", opts.Size)
	}
	if opts.Query != "" {
		params.Set("q", opts.Query)
	}
	if opts.IncludeInactive {
		params.Set("include_inactive", "true")
	}
	if opts.Limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", opts.Limit))
	}

	var products []ProductResponse
	err := c.list("/api/v1/products", params, &products)
	return products, err
}

// CreateProduct создаёт товар.
func (c *Client) CreateProduct(req CreateProductRequest) (*ProductResponse, error) {
	var product ProductResponse
	err := c.post("/api/v1/products", req, &product)
	return &product, err
}

// GetProduct возвращает товар по ID.
func (c *Client) GetProduct(id string) (*ProductResponse, error) {
	var product ProductResponse
	err := c.get("/api/v1/products/"+id, &product)
	return &product, err
}

// UpdateProduct обновляет товар.
func (c *Client) UpdateProduct(id string, req UpdateProductRequest) (*ProductResponse, error) {
	var product ProductResponse
	err := c.put("/api/v1/products/"+id, req, &product)
	return &product, err
}

// DeleteProduct удаляет товар.
func (c *Client) DeleteProduct(id string) error {
	return c.delete("/api/v1/products/" + id)
}

// --- Projects ---

// ListProjects возвращает проекты с фильтрацией.
func (c *Client) ListProjects(opts ListProjectsOpts) ([]ProjectResponse, error) {
	params := url.Values{}
	if opts.Featured {
		params.Set("featured", "true")
	}
	if opts.IncludeInactive {
		params.Set("include_inactive", "true")
	}
	if opts.Limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", opts.Limit))
	}

	var projects []ProjectResponse
	err := c.list("/api/v1/projects", params, &projects)
	return projects, err
}

// CreateProject создаёт проект.
func (c *Client) CreateProject(req CreateProjectRequest) (*ProjectResponse, error) {
	var project ProjectResponse
	err := c.post("/api/v1/projects", req, &project)
	return &project, err
}

// GetProject возвращает проект по ID.
func (c *Client) GetProject(id string) (*ProjectResponse, error) {
	var project ProjectResponse
	err := c.get("/api/v1/projects/"+id, &project)
	return &project, err
}

// UpdateProject обновляет проект.
func (c *Client) UpdateProject(id string, req UpdateProjectRequest) (*ProjectResponse, error) {
	var project ProjectResponse
	err := c.put("/api/v1/projects/"+id, req, &project)
	return &project, err
}

// DeleteProject удаляет проект.
func (c *Client) DeleteProject(id string) error {
	return c.delete("/api/v1/projects/" + id)
}

// --- Leads ---

// ListQuotes возвращает заявки на расчёт.
func (c *Client) ListQuotes(opts ListLeadsOpts) ([]QuoteResponse, error) {
	var quotes []QuoteResponse
	err := c.list("/api/v1/quotes", leadParams(opts), &quotes)
	return quotes, err
}

// GetQuote возвращает заявку по ID.
func (c *Client) GetQuote(id string) (*QuoteResponse, error) {
	var quote QuoteResponse
	err := c.get("/api/v1/quotes/"+id, &quote)
	return &quote, err
}

// ListContacts возвращает контактные сообщения.
func (c *Client) ListContacts(opts ListLeadsOpts) ([]ContactResponse, error) {
	var contacts []ContactResponse
	err := c.list("/api/v1/contacts", leadParams(opts), &contacts)
	return contacts, err
}

// GetContact возвращает контактное сообщение по ID.
func (c *Client) GetContact(id string) (*ContactResponse, error) {
	var contact ContactResponse
	err := c.get("/api/v1/contacts/"+id, &contact)
	return &contact, err
}

func leadParams(opts ListLeadsOpts) url.Values {
	params := url.Values{}
	if opts.Status != "" {
		params.Set("status", opts.Status)
	}
	if opts.Limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", opts.Limit))
	}
	return params
}

// --- HTTP helpers ---

func (c *Client) get(path string, result any) error {
	return c.doData(http.MethodGet, path, nil, result)
}

func (c *Client) post(path string, body any, result any) error {
	return c.doData(http.MethodPost, path, body, result)
}

func (c *Client) put(path string, body any, result any) error {
	return c.doData(http.MethodPut, path, body, result)
}

func (c *Client) delete(path string) error {
	resp, err := c.do(http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.checkError(resp)
}

func (c *Client) list(path string, params url.Values, result any) error {
	if len(params) > 0 {
		path = path + "?" + params.Encode()
	}

	resp, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	var lr listResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return json.Unmarshal(lr.Data, result)
}

func (c *Client) doData(method, path string, body any, result any) error {
	resp, err := c.do(method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	// 204 No Content
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var dr dataResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if result != nil {
		return json.Unmarshal(dr.Data, result)
	}
	return nil
}

func (c *Client) do(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

func (c *Client) checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return fmt.Errorf("API error: HTTP %d", resp.StatusCode)
	}

	return fmt.Errorf("%s: %s", er.Error.Code, er.Error.Message)
}
