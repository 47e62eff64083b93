package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"newsdesk/internal/query"
	"newsdesk/internal/usecase"
)

// UserHandler serves user administration endpoints.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	logger      *zerolog.Logger
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userUsecase usecase.UserUsecase, logger *zerolog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger,
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, total, err := h.userUsecase.ListUsers(r.Context(), query.Parse(r.URL.Query()))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondList(w, users, total)
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"    validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin user"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(h.logger, w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		respondError(h.logger, w, err)
		return
	}

	user, err := h.userUsecase.CreateUser(r.Context(), usecase.CreateUserParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusCreated, user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userUsecase.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userUsecase.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusOK, nil)
}
