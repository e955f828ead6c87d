package handlers

import (
	"net/http"

	"github.com/syncstate/ledger-hub/service"
)

func HandleGetTokens() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokens, err := service.LedgerSvc.GetTokens()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, tokens)
	}
}
