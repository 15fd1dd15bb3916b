package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diwanalardiya/ardiya/internal/domain"
)

// ProductRepo — репозиторий для работы с каталогом товаров.
//
// Таблица products:
//
//	id UUID PK, title TEXT, description TEXT, category TEXT,
//	material_type TEXT, size TEXT, weight TEXT,
//	images JSONB, specs JSONB, is_active BOOL, created_at TIMESTAMPTZ
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepo создаёт новый ProductRepo.
func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// ProductFilter — фильтр для списка товаров.
//
// Query — шаблон текстового поиска, применяется к title и description
// без учёта регистра.
type ProductFilter struct {
	Category     string
	MaterialType string
	Size         string
	Query        string
	ActiveOnly   bool
	Limit        int
	Offset       int
}

// Create создаёт новый товар.
func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	imagesJSON, specsJSON, err := marshalProductJSON(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO products (
			id, title, description, category, material_type,
			size, weight, images, specs, is_active, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = r.pool.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Description,
		p.Category,
		p.MaterialType,
		p.Size,
		p.Weight,
		imagesJSON,
		specsJSON,
		p.IsActive,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID возвращает товар по ID.
func (r *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := productSelect + ` WHERE id = $1`
	return scanProduct(r.pool.QueryRow(ctx, query, id))
}

// List возвращает товары с фильтрацией, новые первыми.
func (r *ProductRepo) List(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	var conditions []string
	var args []any
	argNum := 1

	if filter.ActiveOnly {
		conditions = append(conditions, "is_active = TRUE")
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argNum))
		args = append(args, filter.Category)
		argNum++
	}
	if filter.MaterialType != "" {
		conditions = append(conditions, fmt.Sprintf("material_type = $%d", argNum))
		args = append(args, filter.MaterialType)
		argNum++
	}
	if filter.Size != "" {
		conditions = append(conditions, fmt.Sprintf("size = $%d", argNum))
		args = append(args, filter.Size)
		argNum++
	}
	if filter.Query != "" {
		// Поиск по шаблону в названии и описании, без учёта регистра
		conditions = append(conditions,
			fmt.Sprintf("(title ~* $%d OR description ~* $%d)", argNum, argNum))
		args = append(args, filter.Query)
		argNum++
	}

	query := productSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// Update обновляет товар.
func (r *ProductRepo) Update(ctx context.Context, p *domain.Product) error {
	imagesJSON, specsJSON, err := marshalProductJSON(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE products
		SET title = $2, description = $3, category = $4, material_type = $5,
		    size = $6, weight = $7, images = $8, specs = $9, is_active = $10
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Description,
		p.Category,
		p.MaterialType,
		p.Size,
		p.Weight,
		imagesJSON,
		specsJSON,
		p.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete удаляет товар.
func (r *ProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Вспомогательные методы ---

const productSelect = `
	SELECT id, title, description, category, material_type,
	       size, weight, images, specs, is_active, created_at
	FROM products
`

// marshalProductJSON сериализует JSONB-поля товара.
func marshalProductJSON(p *domain.Product) (imagesJSON, specsJSON []byte, err error) {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err = json.Marshal(images)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal images: %w", err)
	}

	specs := p.Specs
	if specs == nil {
		specs = map[string]any{}
	}
	specsJSON, err = json.Marshal(specs)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal specs: %w", err)
	}

	return imagesJSON, specsJSON, nil
}

// scanProduct сканирует одну строку в Product.
func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var imagesJSON, specsJSON []byte

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.MaterialType,
		&p.Size,
		&p.Weight,
		&imagesJSON,
		&specsJSON,
		&p.IsActive,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}

	if err := unmarshalProductJSON(&p, imagesJSON, specsJSON); err != nil {
		return nil, err
	}
	return &p, nil
}

// scanProductRow сканирует строку из rows (без обработки ErrNoRows).
func scanProductRow(rows pgx.Rows) (*domain.Product, error) {
	var p domain.Product
	var imagesJSON, specsJSON []byte

	err := rows.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.MaterialType,
		&p.Size,
		&p.Weight,
		&imagesJSON,
		&specsJSON,
		&p.IsActive,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}

	if err := unmarshalProductJSON(&p, imagesJSON, specsJSON); err != nil {
		return nil, err
	}
	return &p, nil
}

func unmarshalProductJSON(p *domain.Product, imagesJSON, specsJSON []byte) error {
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return fmt.Errorf("unmarshal images: %w", err)
		}
	}
	if len(specsJSON) > 0 {
		if err := json.Unmarshal(specsJSON, &p.Specs); err != nil {
			return fmt.Errorf("unmarshal specs: %w", err)
		}
	}
	return nil
}
