package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"newsdesk/internal/mediastore"
	"newsdesk/internal/query"
	"newsdesk/internal/usecase"
)

const (
	maxMediaUploadBytes = 10 << 20 // 10MB per request
	maxMediaFiles       = 10
)

// MediaHandler serves standalone media endpoints.
type MediaHandler struct {
	mediaUsecase usecase.MediaUsecase
	store        *mediastore.Store
	logger       *zerolog.Logger
}

// NewMediaHandler creates a new MediaHandler instance.
func NewMediaHandler(mediaUsecase usecase.MediaUsecase, store *mediastore.Store, logger *zerolog.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUsecase: mediaUsecase,
		store:        store,
		logger:       logger,
	}
}

func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	media, total, err := h.mediaUsecase.ListMedia(r.Context(), query.Parse(r.URL.Query()))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondList(w, media, total)
}

// Upload handles POST /handleMedia: a multipart "media" field with up to ten
// files, each stored on disk and recorded against the given news article.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMediaUploadBytes); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	newsID := r.FormValue("newsId")
	if newsID == "" {
		respondMessage(w, http.StatusBadRequest, "newsId is required")
		return
	}

	files := r.MultipartForm.File["media"]
	if len(files) == 0 {
		respondMessage(w, http.StatusBadRequest, "no media uploaded")
		return
	}
	if len(files) > maxMediaFiles {
		respondMessage(w, http.StatusBadRequest, "at most 10 media files are allowed")
		return
	}

	srcs := make([]string, 0, len(files))
	for _, file := range files {
		src, err := h.store.Save(file, mediastore.KindMedia)
		if err != nil {
			respondError(h.logger, w, err)
			return
		}
		srcs = append(srcs, src)
	}

	records, err := h.mediaUsecase.AttachMedia(r.Context(), newsID, srcs)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusCreated, records)
}

type deleteMediaRequest struct {
	MediaIDs []string `json:"mediaIds" validate:"required,min=1"`
}

func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteMediaRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(h.logger, w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		respondError(h.logger, w, err)
		return
	}

	if err := h.mediaUsecase.DeleteMedia(r.Context(), req.MediaIDs); err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusOK, nil)
}

// Update replaces the file behind a media record.
func (h *MediaHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMediaUploadBytes); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	files := r.MultipartForm.File["media"]
	if len(files) == 0 {
		respondMessage(w, http.StatusBadRequest, "no media uploaded")
		return
	}

	src, err := h.store.Save(files[0], mediastore.KindMedia)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	media, err := h.mediaUsecase.ReplaceMedia(r.Context(), chi.URLParam(r, "id"), src)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusOK, media)
}
