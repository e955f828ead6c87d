package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/syncstate/ledger-hub/service"
	"github.com/syncstate/ledger-hub/util"
)

// HandleGetExecutedTx writes a JSON null when the transaction has no receipt;
// absence is not an error on this endpoint.
func HandleGetExecutedTx() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		receipt, err := service.LedgerSvc.GetExecutedTxReceipt(mux.Vars(r)["tx_hash"])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, receipt)
	}
}

func HandleGetTxByHash() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tx, err := service.LedgerSvc.GetTxByHash(mux.Vars(r)["tx_hash"])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, tx)
	}
}

func HandleGetPriorityOpReceipt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serialId, err := util.StringToUint32(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, service.BadRequestErr)
			return
		}
		receipt, err := service.LedgerSvc.GetPriorityOpReceipt(serialId)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, receipt)
	}
}

func HandleGetBlockTxAtIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		blockNumber, err := util.StringToUint64(vars["block_id"])
		if err != nil {
			writeError(w, service.BadRequestErr)
			return
		}
		txIndex, err := util.StringToUint32(vars["tx_id"])
		if err != nil {
			writeError(w, service.BadRequestErr)
			return
		}
		op, err := service.LedgerSvc.GetBlockTxAtIndex(blockNumber, txIndex)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, op)
	}
}
