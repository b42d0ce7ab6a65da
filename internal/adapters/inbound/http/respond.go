package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case BADREQUEST:
		statusCode = http.StatusBadRequest
	case NOTFOUND:
		statusCode = http.StatusNotFound
	case CONFLICT:
		statusCode = http.StatusConflict
	}
	respondJSON(w, statusCode, err)
}

func respondBadRequest(w http.ResponseWriter, format string, args ...any) {
	errResp := ErrorResp{}
	errResp.Error.Code = BADREQUEST
	errResp.Error.Message = fmt.Sprintf(format, args...)
	respondError(w, errResp)
}
