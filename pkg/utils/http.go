package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SuccessResponse — конверт успешного ответа
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse — конверт ошибки
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func WriteSuccess(w http.ResponseWriter, data any, code int) error {
	return WriteJSON(w, SuccessResponse{Success: true, Data: data}, code)
}

func WriteError(w http.ResponseWriter, errCode, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Error: APIError{Code: errCode, Message: message}}, code)
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]string, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return WriteError(w, "VALIDATION_ERROR", "invalid request: "+strings.Join(fields, ", "), http.StatusBadRequest)
	}
	return WriteError(w, "VALIDATION_ERROR", "invalid request", http.StatusBadRequest)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
