// Package handlers contains one HTTP handler per gateway resource. Handlers
// validate input, delegate to the ledger service and map its errors onto the
// fixed status taxonomy: 400 bad input, 404 genuinely absent, 408 storage
// pool exhausted, 500 any other storage failure.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/syncstate/ledger-hub/logging"
	"github.com/syncstate/ledger-hub/service"
)

// Error maps a service error to an HTTP status code and message.
func Error(err error) (int, string) {
	switch e := err.(type) {
	case service.Err:
		return int(e.Code), e.Message
	case nil:
		return http.StatusOK, ""
	default:
		return http.StatusInternalServerError, service.InternalErr.Message
	}
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Logger.Errorf("failed to write response, err=%s", err.Error())
	}
}

func writeError(w http.ResponseWriter, err error) {
	code, message := Error(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if encodeErr := json.NewEncoder(w).Encode(service.Err{Code: int64(code), Message: message}); encodeErr != nil {
		logging.Logger.Errorf("failed to write error response, err=%s", encodeErr.Error())
	}
}
