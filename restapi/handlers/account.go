package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/syncstate/ledger-hub/service"
	"github.com/syncstate/ledger-hub/util"
)

func HandleGetAccountState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := service.LedgerSvc.GetAccountState(mux.Vars(r)["address"])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, state)
	}
}

func HandleGetAccountTxHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		offset, err := util.StringToInt64(vars["offset"])
		if err != nil {
			writeError(w, service.BadRequestErr)
			return
		}
		limit, err := util.StringToInt64(vars["limit"])
		if err != nil {
			writeError(w, service.BadRequestErr)
			return
		}
		txs, err := service.LedgerSvc.GetAccountTxHistory(vars["address"], offset, limit)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, txs)
	}
}
