package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/diwanalardiya/ardiya/internal/domain"
	"github.com/diwanalardiya/ardiya/internal/repo"
)

// ListProjects возвращает проекты портфолио.
// GET /api/v1/projects?featured=true&limit=...&offset=...
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repo.ProjectFilter{
		FeaturedOnly: query.Get("featured") == "true",
		ActiveOnly:   query.Get("include_inactive") != "true",
		Limit:        int(mustParseInt(query.Get("limit"), defaultListLimit)),
		Offset:       int(mustParseInt(query.Get("offset"), 0)),
	}

	projects, err := h.projectRepo.List(r.Context(), filter)
	if HandleRepoError(w, h.logger, err, "") {
		return
	}

	result := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		result[i] = ProjectFromDomain(p)
	}

	List(w, result, len(result))
}

// CreateProject создаёт новый проект.
// POST /api/v1/projects
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	project := &domain.Project{
		ID:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		MaterialsUsed: req.MaterialsUsed,
		Images:        req.Images,
		IsFeatured:    req.IsFeatured,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if err := domain.ValidateProject(project); err != nil {
		BadRequest(w, err.Error())
		return
	}

	if err := h.projectRepo.Create(r.Context(), project); HandleRepoError(w, h.logger, err, "") {
		return
	}

	Created(w, ProjectFromDomain(*project))
}

// GetProject возвращает проект по ID.
// GET /api/v1/projects/{id}
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid project id")
		return
	}

	project, err := h.projectRepo.GetByID(r.Context(), id)
	if HandleRepoError(w, h.logger, err, "project not found") {
		return
	}

	Success(w, ProjectFromDomain(*project))
}

// UpdateProject частично обновляет проект.
// PUT /api/v1/projects/{id}
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid project id")
		return
	}

	var req UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	project, err := h.projectRepo.GetByID(r.Context(), id)
	if HandleRepoError(w, h.logger, err, "project not found") {
		return
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.MaterialsUsed != nil {
		project.MaterialsUsed = *req.MaterialsUsed
	}
	if req.Images != nil {
		project.Images = *req.Images
	}
	if req.IsFeatured != nil {
		project.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if err := domain.ValidateProject(project); err != nil {
		BadRequest(w, err.Error())
		return
	}

	if err := h.projectRepo.Update(r.Context(), project); HandleRepoError(w, h.logger, err, "project not found") {
		return
	}

	Success(w, ProjectFromDomain(*project))
}

// DeleteProject удаляет проект.
// DELETE /api/v1/projects/{id}
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid project id")
		return
	}

	if err := h.projectRepo.Delete(r.Context(), id); HandleRepoError(w, h.logger, err, "project not found") {
		return
	}

	NoContent(w)
}
