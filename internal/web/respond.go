package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"parpass-api/internal/service"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgServerError    = "Server error"
	msgInvalidBody    = "Invalid request body"
	msgInvalidMember  = "Invalid member id"
	msgInvalidCourse  = "Invalid course id"
	msgAlreadyFavored = "Already favorited"
	msgFavRemoved     = "Favorite removed"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError answers with the public message of a service error, or logs
// err and answers with a generic 500.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case service.KindNotFound:
			writeError(w, http.StatusNotFound, svcErr.Message)
			return
		case service.KindForbidden:
			writeError(w, http.StatusForbidden, svcErr.Message)
			return
		case service.KindBadRequest:
			writeError(w, http.StatusBadRequest, svcErr.Message)
			return
		}
	}

	h.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, msgServerError)
}

// decodeAndValidate writes a 400 and returns false when the body is not
// valid JSON or fails its validate tags.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !decode(w, r, dst) {
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// pathID reads a UUID path parameter, writing a 400 with message when it
// is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name, message string) (string, bool) {
	id, err := uuid.Parse(urlParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, message)
		return "", false
	}
	return id.String(), true
}
