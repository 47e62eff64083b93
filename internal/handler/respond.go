package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"newsdesk/internal/usecase"
)

type listEnvelope struct {
	Status  string `json:"status"`
	Results int    `json:"results"`
	Total   int64  `json:"total"`
	Data    any    `json:"data"`
}

type dataEnvelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondList writes the standard list envelope: the page of results plus the
// total count of documents matching the filter conditions.
func respondList[T any](w http.ResponseWriter, items []T, total int64) {
	respondJSON(w, http.StatusOK, listEnvelope{
		Status:  "success",
		Results: len(items),
		Total:   total,
		Data:    items,
	})
}

func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, dataEnvelope{Status: "success", Data: data})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Message: message})
}

// respondError maps usecase errors onto the HTTP taxonomy. Unrecognized
// errors are logged and reported generically.
func respondError(logger *zerolog.Logger, w http.ResponseWriter, err error) {
	var ve validationError
	if errors.As(err, &ve) {
		respondMessage(w, http.StatusBadRequest, ve.Error())
		return
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrInvalidCode),
		errors.Is(err, usecase.ErrAlreadyVerified),
		errors.Is(err, usecase.ErrEmailMissing):
		respondMessage(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, usecase.ErrNotVerified),
		errors.Is(err, usecase.ErrNotCommentAuthor):
		respondMessage(w, http.StatusForbidden, err.Error())

	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrCategoryNotFound),
		errors.Is(err, usecase.ErrNewsNotFound),
		errors.Is(err, usecase.ErrMediaNotFound),
		errors.Is(err, usecase.ErrCommentNotFound),
		errors.Is(err, usecase.ErrVerificationNotFound):
		respondMessage(w, http.StatusNotFound, err.Error())

	case errors.Is(err, usecase.ErrUserAlreadyExists),
		errors.Is(err, usecase.ErrCategoryExists):
		respondMessage(w, http.StatusConflict, err.Error())

	default:
		logger.Error().Err(err).Msg("request failed")
		respondMessage(w, http.StatusInternalServerError, "something went wrong")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return validationError{message: "invalid request body"}
	}

	return nil
}
