package restapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/syncstate/ledger-hub/config"
	"github.com/syncstate/ledger-hub/restapi/handlers"
	"github.com/syncstate/ledger-hub/status"
)

const (
	// APIPathPrefix versions the whole query surface.
	APIPathPrefix = "/api/v0.1"
	// ShutdownTimeout bounds the graceful drain window on exit.
	ShutdownTimeout = 1 * time.Second
)

// Router builds the gateway's full route table.
func Router(statusCache *status.Cache) *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix(APIPathPrefix).Subrouter()
	api.HandleFunc("/testnet_config", handlers.HandleGetTestnetConfig()).Methods(http.MethodGet)
	api.HandleFunc("/status", handlers.HandleGetNetworkStatus(statusCache)).Methods(http.MethodGet)
	api.HandleFunc("/account/{address}", handlers.HandleGetAccountState()).Methods(http.MethodGet)
	api.HandleFunc("/tokens", handlers.HandleGetTokens()).Methods(http.MethodGet)
	api.HandleFunc("/account/{address}/history/{offset}/{limit}", handlers.HandleGetAccountTxHistory()).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{tx_hash}", handlers.HandleGetExecutedTx()).Methods(http.MethodGet)
	api.HandleFunc("/transactions_all/{tx_hash}", handlers.HandleGetTxByHash()).Methods(http.MethodGet)
	api.HandleFunc("/priority_operations/{id}/", handlers.HandleGetPriorityOpReceipt()).Methods(http.MethodGet)
	api.HandleFunc("/blocks/{block_id}/transactions/{tx_id}", handlers.HandleGetBlockTxAtIndex()).Methods(http.MethodGet)
	api.HandleFunc("/blocks/{block_id}/transactions", handlers.HandleGetBlockTransactions()).Methods(http.MethodGet)
	api.HandleFunc("/blocks/{block_id}", handlers.HandleGetBlockByNumber()).Methods(http.MethodGet)
	api.HandleFunc("/blocks", handlers.HandleGetBlocks()).Methods(http.MethodGet)
	api.HandleFunc("/search", handlers.HandleBlockExplorerSearch()).Methods(http.MethodGet)

	// Liveness probe used by the web client's isReachable check.
	router.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return router
}

type Server struct {
	cfg        *config.ServerConfig
	httpServer *http.Server
}

func NewServer(cfg *config.ServerConfig, statusCache *status.Cache) *Server {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
		MaxAge:         3600,
	})
	return &Server{
		cfg: cfg,
		httpServer: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           corsHandler.Handler(Router(statusCache)),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests within ShutdownTimeout, then forces
// close.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
