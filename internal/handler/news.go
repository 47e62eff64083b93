package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"newsdesk/internal/mediastore"
	"newsdesk/internal/query"
	"newsdesk/internal/usecase"
)

const (
	maxNewsUploadBytes = 40 << 20 // 40MB, images and videos combined
	maxNewsPhotos      = 3
)

// NewsHandler serves news article endpoints, including the multipart
// create/update forms that carry photo and video uploads.
type NewsHandler struct {
	newsUsecase usecase.NewsUsecase
	store       *mediastore.Store
	logger      *zerolog.Logger
}

// NewNewsHandler creates a new NewsHandler instance.
func NewNewsHandler(newsUsecase usecase.NewsUsecase, store *mediastore.Store, logger *zerolog.Logger) *NewsHandler {
	return &NewsHandler{
		newsUsecase: newsUsecase,
		store:       store,
		logger:      logger,
	}
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	news, total, err := h.newsUsecase.ListNews(r.Context(), query.Parse(r.URL.Query()))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondList(w, news, total)
}

func (h *NewsHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")
	if term == "" {
		respondMessage(w, http.StatusBadRequest, "search term is required")
		return
	}

	news, total, err := h.newsUsecase.SearchNews(r.Context(), term, query.Parse(r.URL.Query()))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondList(w, news, total)
}

type createNewsForm struct {
	Title        string `validate:"required"`
	Description  string `validate:"required"`
	Author       string `validate:"required"`
	CategoryID   string `validate:"required"`
	PlaceOfMedia string `validate:"required"`
	IsTopNews    bool
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxNewsUploadBytes); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	form := createNewsForm{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Author:       r.FormValue("author"),
		CategoryID:   r.FormValue("category"),
		PlaceOfMedia: r.FormValue("placeOfMedia"),
	}
	form.IsTopNews, _ = strconv.ParseBool(r.FormValue("isTopNews"))

	if err := validateStruct(form); err != nil {
		respondError(h.logger, w, err)
		return
	}

	photos, video, err := h.saveUploads(r)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	news, err := h.newsUsecase.CreateNews(r.Context(), usecase.CreateNewsParams{
		Title:        form.Title,
		Description:  form.Description,
		Author:       form.Author,
		CategoryID:   form.CategoryID,
		IsTopNews:    form.IsTopNews,
		PlaceOfMedia: form.PlaceOfMedia,
		Photos:       photos,
		Video:        video,
	})
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusCreated, news)
}

func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	news, err := h.newsUsecase.GetNews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusOK, news)
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxNewsUploadBytes); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	params := usecase.UpdateNewsParams{}
	if v := r.FormValue("title"); v != "" {
		params.Title = &v
	}
	if v := r.FormValue("description"); v != "" {
		params.Description = &v
	}
	if v := r.FormValue("author"); v != "" {
		params.Author = &v
	}
	if v := r.FormValue("category"); v != "" {
		params.CategoryID = &v
	}
	if v := r.FormValue("placeOfMedia"); v != "" {
		params.PlaceOfMedia = &v
	}
	if v := r.FormValue("isTopNews"); v != "" {
		isTop, err := strconv.ParseBool(v)
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "isTopNews must be a boolean")
			return
		}
		params.IsTopNews = &isTop
	}

	photos, video, err := h.saveUploads(r)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}
	if len(photos) > 0 {
		params.Photos = &photos
	}
	if video != "" {
		params.Video = &video
	}

	news, err := h.newsUsecase.UpdateNews(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusOK, news)
}

func (h *NewsHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	news, err := h.newsUsecase.DeactivateNews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondData(w, http.StatusOK, news)
}

// saveUploads persists the optional "photos" and "video" form files and
// returns their public paths.
func (h *NewsHandler) saveUploads(r *http.Request) ([]string, string, error) {
	if r.MultipartForm == nil {
		return nil, "", nil
	}

	photoFiles := r.MultipartForm.File["photos"]
	if len(photoFiles) > maxNewsPhotos {
		return nil, "", validationError{message: "at most 3 photos are allowed"}
	}

	var photos []string
	for _, file := range photoFiles {
		src, err := h.store.Save(file, mediastore.KindImage)
		if err != nil {
			return nil, "", err
		}
		photos = append(photos, src)
	}

	var video string
	if videoFiles := r.MultipartForm.File["video"]; len(videoFiles) > 0 {
		src, err := h.store.Save(videoFiles[0], mediastore.KindVideo)
		if err != nil {
			return nil, "", err
		}
		video = src
	}

	return photos, video, nil
}
