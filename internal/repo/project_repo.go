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

// ProjectRepo — репозиторий для работы с портфолио проектов.
//
// Таблица projects:
//
//	id UUID PK, title TEXT, description TEXT,
//	materials_used JSONB, images JSONB,
//	is_featured BOOL, is_active BOOL, created_at TIMESTAMPTZ
type ProjectRepo struct {
	pool *pgxpool.Pool
}

// NewProjectRepo создаёт новый ProjectRepo.
func NewProjectRepo(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

// ProjectFilter — фильтр для списка проектов.
type ProjectFilter struct {
	FeaturedOnly bool
	ActiveOnly   bool
	Limit        int
	Offset       int
}

// Create создаёт новый проект.
func (r *ProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	materialsJSON, imagesJSON, err := marshalProjectJSON(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (
			id, title, description, materials_used, images,
			is_featured, is_active, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.pool.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Description,
		materialsJSON,
		imagesJSON,
		p.IsFeatured,
		p.IsActive,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID возвращает проект по ID.
func (r *ProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	query := projectSelect + ` WHERE id = $1`

	var p domain.Project
	var materialsJSON, imagesJSON []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&materialsJSON,
		&imagesJSON,
		&p.IsFeatured,
		&p.IsActive,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project by id: %w", err)
	}

	if err := unmarshalProjectJSON(&p, materialsJSON, imagesJSON); err != nil {
		return nil, err
	}
	return &p, nil
}

// List возвращает проекты с фильтрацией, новые первыми.
func (r *ProjectRepo) List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error) {
	var conditions []string

	if filter.ActiveOnly {
		conditions = append(conditions, "is_active = TRUE")
	}
	if filter.FeaturedOnly {
		conditions = append(conditions, "is_featured = TRUE")
	}

	query := projectSelect
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

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		var materialsJSON, imagesJSON []byte
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&materialsJSON,
			&imagesJSON,
			&p.IsFeatured,
			&p.IsActive,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}

		if err := unmarshalProjectJSON(&p, materialsJSON, imagesJSON); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Update обновляет проект.
func (r *ProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	materialsJSON, imagesJSON, err := marshalProjectJSON(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE projects
		SET title = $2, description = $3, materials_used = $4,
		    images = $5, is_featured = $6, is_active = $7
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Description,
		materialsJSON,
		imagesJSON,
		p.IsFeatured,
		p.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete удаляет проект.
func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Вспомогательные методы ---

const projectSelect = `
	SELECT id, title, description, materials_used, images,
	       is_featured, is_active, created_at
	FROM projects
`

func marshalProjectJSON(p *domain.Project) (materialsJSON, imagesJSON []byte, err error) {
	materials := p.MaterialsUsed
	if materials == nil {
		materials = []string{}
	}
	materialsJSON, err = json.Marshal(materials)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal materials_used: %w", err)
	}

	images := p.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err = json.Marshal(images)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal images: %w", err)
	}

	return materialsJSON, imagesJSON, nil
}

func unmarshalProjectJSON(p *domain.Project, materialsJSON, imagesJSON []byte) error {
	if len(materialsJSON) > 0 {
		if err := json.Unmarshal(materialsJSON, &p.MaterialsUsed); err != nil {
			return fmt.Errorf("unmarshal materials_used: %w", err)
		}
	}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return fmt.Errorf("unmarshal images: %w", err)
		}
	}
	return nil
}
