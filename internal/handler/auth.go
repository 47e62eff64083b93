package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"newsdesk/internal/usecase"
)

// AuthHandler serves login, signup and the email verification flow.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	logger      *zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"omitempty,email"`
	Username string `json:"username"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    any    `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(h.logger, w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		respondError(h.logger, w, err)
		return
	}
	if req.Email == "" && req.Username == "" {
		respondMessage(w, http.StatusBadRequest, "email or username is required")
		return
	}

	token, user, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"    validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin user"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(h.logger, w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		respondError(h.logger, w, err)
		return
	}

	user, err := h.authUsecase.Signup(r.Context(), usecase.SignupParams{
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

type sendEmailRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func (h *AuthHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(h.logger, w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		respondError(h.logger, w, err)
		return
	}

	if err := h.authUsecase.SendVerificationEmail(r.Context(), req.UserID); err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusOK, nil)
}

type verifyRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(h.logger, w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		respondError(h.logger, w, err)
		return
	}

	user, err := h.authUsecase.Verify(r.Context(), req.Code)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusOK, user)
}

type verificationStatusResponse struct {
	IsVerified bool `json:"is_verified"`
}

// VerificationStatus reports whether the authenticated account has completed
// email verification.
func (h *AuthHandler) VerificationStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	respondData(w, http.StatusOK, verificationStatusResponse{IsVerified: user.IsVerified})
}
