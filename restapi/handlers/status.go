package handlers

import (
	"net/http"

	"github.com/syncstate/ledger-hub/service"
	"github.com/syncstate/ledger-hub/status"
)

func HandleGetTestnetConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, service.LedgerSvc.TestnetConfig())
	}
}

// HandleGetNetworkStatus serves the cached snapshot; it never touches
// storage.
func HandleGetNetworkStatus(cache *status.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := cache.Read()
		writeJSON(w, &snapshot)
	}
}
