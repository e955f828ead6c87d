package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/syncstate/ledger-hub/service"
	"github.com/syncstate/ledger-hub/util"
)

func HandleGetBlocks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		maxBlock := uint64(service.MaxBlockSentinel)
		if raw := query.Get("max_block"); raw != "" {
			parsed, err := util.StringToUint64(raw)
			if err != nil {
				writeError(w, service.BadRequestErr)
				return
			}
			maxBlock = parsed
		}
		limit := uint32(service.DefaultBlocksLimit)
		if raw := query.Get("limit"); raw != "" {
			parsed, err := util.StringToUint32(raw)
			if err != nil {
				writeError(w, service.BadRequestErr)
				return
			}
			limit = parsed
		}

		blocks, err := service.LedgerSvc.GetBlockRange(maxBlock, limit)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, blocks)
	}
}

func HandleGetBlockByNumber() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blockNumber, err := util.StringToUint64(mux.Vars(r)["block_id"])
		if err != nil {
			writeError(w, service.BadRequestErr)
			return
		}
		block, err := service.LedgerSvc.GetBlockByNumber(blockNumber)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, block)
	}
}

func HandleGetBlockTransactions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blockNumber, err := util.StringToUint64(mux.Vars(r)["block_id"])
		if err != nil {
			writeError(w, service.BadRequestErr)
			return
		}
		txs, err := service.LedgerSvc.GetBlockTransactions(blockNumber)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, txs)
	}
}
