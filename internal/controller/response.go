package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/unclebandit/storefront-backend/internal/db"
)

const (
	msgIDRequired     = "O id precisa ser informado"
	msgIDNotInteger   = "O id precisa ser um número inteiro"
	msgFieldsRequired = "Todos os campos são obrigatórios"
)

// messageResponse is the body of 400 and 404 answers and of the delete
// confirmation.
type messageResponse struct {
	Mensagem string `json:"mensagem"`
}

// errorResponse is the body of 500 answers. It never carries the cause.
type errorResponse struct {
	Erro string `json:"erro"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Mensagem: msg})
}

// writeStorageError logs the cause and answers 500 with the fixed message.
func writeStorageError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	zerolog.Ctx(r.Context()).Error().
		Err(err).
		Str("sqlstate", db.SQLState(err)).
		Str("sqlstate_class", db.SQLStateClass(err)).
		Msg(msg)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Erro: msg})
}

var errIDMissing = errors.New("id missing")

// pathID reads {id}. The router never matches an empty segment, but the
// check is kept so the handlers stay correct when mounted differently.
func pathID(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return 0, errIDMissing
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// writeIDError answers 400 for a missing or non-numeric id.
func writeIDError(w http.ResponseWriter, err error) {
	if errors.Is(err, errIDMissing) {
		writeMessage(w, http.StatusBadRequest, msgIDRequired)
		return
	}
	writeMessage(w, http.StatusBadRequest, msgIDNotInteger)
}

var errTrailingData = errors.New("unexpected data after the JSON body")

// decodeBody reports false for malformed JSON, wrongly typed values or
// anything after the first value; the caller answers with the same 400 as
// for missing fields.
func decodeBody(r *http.Request, dst any) bool {
	if r.Body == nil {
		return true
	}
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if err == nil {
		if extra := dec.Decode(&json.RawMessage{}); !errors.Is(extra, io.EOF) {
			err = errTrailingData
		}
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("invalid body")
	}
	return err == nil
}
