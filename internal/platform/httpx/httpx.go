package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"veterinaria-backend/internal/domain/apperr"
)

// WriteJSON estaba duplicado por módulo en versiones anteriores; al
// repetirse en todos los handlers lo extrajimos aquí.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Detail string `json:"detail"`
}

// WriteError mapea los kinds de apperr a código HTTP. Cualquier error no
// clasificado responde 500 con detalle opaco; el texto real va al log del
// middleware, no al cliente.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		WriteJSON(w, http.StatusBadRequest, errorBody{Detail: apperr.Detail(err)})
	case errors.Is(err, apperr.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, errorBody{Detail: apperr.Detail(err)})
	case errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrBadState):
		WriteJSON(w, http.StatusConflict, errorBody{Detail: apperr.Detail(err)})
	default:
		WriteJSON(w, http.StatusInternalServerError, errorBody{Detail: "internal error"})
	}
}

func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("invalid json")
	}
	return nil
}
