package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"newsdesk/internal/query"
	"newsdesk/internal/usecase"
)

// CommentHandler serves comment endpoints. All of them sit behind the
// authorization gate; the author comes from the request context.
type CommentHandler struct {
	commentUsecase usecase.CommentUsecase
	logger         *zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler instance.
func NewCommentHandler(commentUsecase usecase.CommentUsecase, logger *zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		commentUsecase: commentUsecase,
		logger:         logger,
	}
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, total, err := h.commentUsecase.ListComments(r.Context(), query.Parse(r.URL.Query()))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondList(w, comments, total)
}

type createCommentRequest struct {
	NewsID string `json:"newsId" validate:"required"`
	Text   string `json:"text"   validate:"required"`
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	var req createCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(h.logger, w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		respondError(h.logger, w, err)
		return
	}

	comment, err := h.commentUsecase.CreateComment(r.Context(), usecase.CreateCommentParams{
		NewsID: req.NewsID,
		UserID: user.ID,
		Text:   req.Text,
	})
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusCreated, comment)
}

func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	comment, err := h.commentUsecase.GetComment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusOK, comment)
}

type updateCommentRequest struct {
	Text  *string `json:"text"  validate:"omitempty,min=1"`
	Likes *int64  `json:"likes" validate:"omitempty,gte=0"`
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	var req updateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(h.logger, w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		respondError(h.logger, w, err)
		return
	}

	comment, err := h.commentUsecase.UpdateComment(r.Context(), chi.URLParam(r, "id"), user.ID, usecase.UpdateCommentParams{
		Text:  req.Text,
		Likes: req.Likes,
	})
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusOK, comment)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	if err := h.commentUsecase.DeleteComment(r.Context(), chi.URLParam(r, "id"), user.ID); err != nil {
		respondError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
