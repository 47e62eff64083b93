package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"newsdesk/internal/query"
	"newsdesk/internal/usecase"
)

// CategoryHandler serves category endpoints.
type CategoryHandler struct {
	categoryUsecase usecase.CategoryUsecase
	logger          *zerolog.Logger
}

// NewCategoryHandler creates a new CategoryHandler instance.
func NewCategoryHandler(categoryUsecase usecase.CategoryUsecase, logger *zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUsecase: categoryUsecase,
		logger:          logger,
	}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, total, err := h.categoryUsecase.ListCategories(r.Context(), query.Parse(r.URL.Query()))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondList(w, categories, total)
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(h.logger, w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		respondError(h.logger, w, err)
		return
	}

	category, err := h.categoryUsecase.CreateCategory(r.Context(), req.Name)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusCreated, category)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryUsecase.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusOK, category)
}

type updateCategoryRequest struct {
	Name   *string `json:"name"   validate:"omitempty,min=1"`
	Active *bool   `json:"active"`
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(h.logger, w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		respondError(h.logger, w, err)
		return
	}

	category, err := h.categoryUsecase.UpdateCategory(r.Context(), chi.URLParam(r, "id"), usecase.UpdateCategoryParams{
		Name:   req.Name,
		Active: req.Active,
	})
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusOK, category)
}

func (h *CategoryHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if _, err := h.categoryUsecase.DeactivateCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusOK, nil)
}
