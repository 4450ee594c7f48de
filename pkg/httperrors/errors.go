package httperrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yourname/upload_pipeline/internal/models"
)

// errorBody JSON-тело любого ответа с ошибкой.
type errorBody struct {
	Error string `json:"error"`
}

// Write переводит ошибку usecase-слоя в HTTP-статус и JSON {"error": ...}.
func Write(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		JSON(w, http.StatusNotFound, "File not found")
	case errors.Is(err, models.ErrInvalidName), errors.Is(err, models.ErrMissingFile):
		JSON(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrUpstream):
		JSON(w, http.StatusBadGateway, err.Error())
	default:
		// IO-ошибки отдаются с текстом причины, как и прочие непредвиденные.
		JSON(w, http.StatusInternalServerError, err.Error())
	}
}

// JSON пишет {"error": msg} с указанным статусом.
func JSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}
