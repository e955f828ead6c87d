package handlers

import (
	"net/http"

	"github.com/syncstate/ledger-hub/service"
)

func HandleBlockExplorerSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		block, err := service.LedgerSvc.SearchBlock(r.URL.Query().Get("query"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, block)
	}
}
