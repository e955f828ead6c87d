package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syncstate/ledger-hub/config"
	"github.com/syncstate/ledger-hub/db"
	"github.com/syncstate/ledger-hub/restapi"
	"github.com/syncstate/ledger-hub/service"
	"github.com/syncstate/ledger-hub/status"
)

// fakeDao satisfies db.LedgerDao; unset hooks return empty results. Every
// method counts as a storage access.
type fakeDao struct {
	storageCalls int

	loadBlockRange   func(maxBlock uint64, limit uint32) ([]*db.Block, error)
	accountState     func(address string) (*db.AccountState, error)
	blockExecutedOps func(blockNumber uint64) ([]*db.ExecutedOp, error)
	findBlock        func(query string) (*db.Block, error)
	tokens           func() ([]*db.Token, error)
}

func (d *fakeDao) GetLastCommittedBlock() (uint64, error) {
	d.storageCalls++
	return 0, nil
}

func (d *fakeDao) GetLastVerifiedBlock() (uint64, error) {
	d.storageCalls++
	return 0, nil
}

func (d *fakeDao) LoadBlockRange(maxBlock uint64, limit uint32) ([]*db.Block, error) {
	d.storageCalls++
	if d.loadBlockRange != nil {
		return d.loadBlockRange(maxBlock, limit)
	}
	return []*db.Block{}, nil
}

func (d *fakeDao) GetBlockTransactions(blockNumber uint64) ([]*db.ExecutedTx, error) {
	d.storageCalls++
	return []*db.ExecutedTx{}, nil
}

func (d *fakeDao) FindBlockByHeightOrHash(query string) (*db.Block, error) {
	d.storageCalls++
	if d.findBlock != nil {
		return d.findBlock(query)
	}
	return nil, nil
}

func (d *fakeDao) GetAccountStateByAddress(address string) (*db.AccountState, error) {
	d.storageCalls++
	if d.accountState != nil {
		return d.accountState(address)
	}
	return &db.AccountState{}, nil
}

func (d *fakeDao) GetAccountTxHistory(address string, offset, limit int64) ([]*db.ExecutedTx, error) {
	d.storageCalls++
	return []*db.ExecutedTx{}, nil
}

func (d *fakeDao) GetTxReceipt(hash []byte) (*db.TxReceipt, error) {
	d.storageCalls++
	return nil, nil
}

func (d *fakeDao) GetTxByHash(hash []byte) (*db.ExecutedTx, error) {
	d.storageCalls++
	return nil, nil
}

func (d *fakeDao) GetBlockExecutedOps(blockNumber uint64) ([]*db.ExecutedOp, error) {
	d.storageCalls++
	if d.blockExecutedOps != nil {
		return d.blockExecutedOps(blockNumber)
	}
	return []*db.ExecutedOp{}, nil
}

func (d *fakeDao) GetPriorityOpReceipt(serialId uint32) (*db.PriorityOpReceipt, error) {
	d.storageCalls++
	return &db.PriorityOpReceipt{}, nil
}

func (d *fakeDao) CountTotalTransactions() (uint64, error) {
	d.storageCalls++
	return 0, nil
}

func (d *fakeDao) CountOutstandingProofs(lastVerified uint64) (uint64, error) {
	d.storageCalls++
	return 0, nil
}

func (d *fakeDao) LoadTokens() ([]*db.Token, error) {
	d.storageCalls++
	if d.tokens != nil {
		return d.tokens()
	}
	return []*db.Token{}, nil
}

func newGateway(dao db.LedgerDao) (http.Handler, *db.ConnectionPool) {
	pool := db.NewConnectionPool(dao, 2)
	service.LedgerSvc = service.NewLedgerService(pool, &config.ServerConfig{
		ListenAddr:      "127.0.0.1:0",
		ContractAddress: "0xfeedface",
	})
	return restapi.Router(status.NewCache()), pool
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestTestnetConfig(t *testing.T) {
	handler, _ := newGateway(&fakeDao{})
	resp := get(handler, "/api/v0.1/testnet_config")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.Equal(t, "0xfeedface", payload["contractAddress"])
}

func TestNetworkStatusDefaults(t *testing.T) {
	handler, _ := newGateway(&fakeDao{})
	resp := get(handler, "/api/v0.1/status")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.Nil(t, payload["next_block_at_max"])
	require.EqualValues(t, 0, payload["last_committed"])
	require.EqualValues(t, 0, payload["last_verified"])
}

func TestAccountStateUnknownAccount(t *testing.T) {
	handler, _ := newGateway(&fakeDao{})
	address := strings.Repeat("11", 20)

	resp := get(handler, "/api/v0.1/account/0x"+address)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	_, hasId := payload["id"]
	require.False(t, hasId)

	var committed map[string]interface{}
	require.NoError(t, json.Unmarshal(payload["committed"], &committed))
	require.Equal(t, address, committed["address"])
	require.Equal(t, "0", committed["balance"])

	var verified map[string]interface{}
	require.NoError(t, json.Unmarshal(payload["verified"], &verified))
	require.Equal(t, address, verified["address"])
}

func TestAccountStateBadAddress(t *testing.T) {
	dao := &fakeDao{}
	handler, _ := newGateway(dao)

	resp := get(handler, "/api/v0.1/account/0x"+strings.Repeat("11", 19))
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Zero(t, dao.storageCalls)
}

func TestHistoryLimitOverCeiling(t *testing.T) {
	dao := &fakeDao{}
	handler, _ := newGateway(dao)
	address := "0x" + strings.Repeat("11", 20)

	resp := get(handler, "/api/v0.1/account/"+address+"/history/0/101")
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Zero(t, dao.storageCalls)

	resp = get(handler, "/api/v0.1/account/"+address+"/history/0/100")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, 1, dao.storageCalls)
}

func TestBlocksDefaults(t *testing.T) {
	var gotMax uint64
	var gotLimit uint32
	dao := &fakeDao{
		loadBlockRange: func(maxBlock uint64, limit uint32) ([]*db.Block, error) {
			gotMax = maxBlock
			gotLimit = limit
			return []*db.Block{{Number: 42}}, nil
		},
	}
	handler, _ := newGateway(dao)

	resp := get(handler, "/api/v0.1/blocks")
	require.Equal(t, http.StatusOK, resp.Code)
	require.EqualValues(t, 999_999_999, gotMax)
	require.EqualValues(t, 20, gotLimit)

	resp = get(handler, "/api/v0.1/blocks?max_block=77&limit=100")
	require.Equal(t, http.StatusOK, resp.Code)
	require.EqualValues(t, 77, gotMax)
	require.EqualValues(t, 100, gotLimit)
}

func TestBlocksLimitOverCeiling(t *testing.T) {
	dao := &fakeDao{}
	handler, _ := newGateway(dao)

	resp := get(handler, "/api/v0.1/blocks?limit=101")
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Zero(t, dao.storageCalls)
}

func TestBlockByNumberNotFound(t *testing.T) {
	handler, _ := newGateway(&fakeDao{})
	resp := get(handler, "/api/v0.1/blocks/5")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestBlockTxAtIndexOutOfRange(t *testing.T) {
	dao := &fakeDao{
		blockExecutedOps: func(blockNumber uint64) ([]*db.ExecutedOp, error) {
			return []*db.ExecutedOp{{BlockIndex: 0, Tx: &db.ExecutedTx{TxHash: "aa"}}}, nil
		},
	}
	handler, _ := newGateway(dao)

	resp := get(handler, "/api/v0.1/blocks/5/transactions/1")
	require.Equal(t, http.StatusNotFound, resp.Code)

	resp = get(handler, "/api/v0.1/blocks/5/transactions/0")
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestExecutedTxRawHexPath(t *testing.T) {
	handler, _ := newGateway(&fakeDao{})

	// one character is too short for the raw-hex path
	resp := get(handler, "/api/v0.1/transactions/a")
	require.Equal(t, http.StatusBadRequest, resp.Code)

	// a missing receipt is a null payload, not an error
	resp = get(handler, "/api/v0.1/transactions/0x"+strings.Repeat("ab", 32))
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "null", strings.TrimSpace(resp.Body.String()))
}

func TestTxByHashBadHash(t *testing.T) {
	dao := &fakeDao{}
	handler, _ := newGateway(dao)

	resp := get(handler, "/api/v0.1/transactions_all/0xzz")
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Zero(t, dao.storageCalls)
}

func TestSearchMiss(t *testing.T) {
	handler, _ := newGateway(&fakeDao{})
	resp := get(handler, "/api/v0.1/search?query=does-not-exist")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSearchHit(t *testing.T) {
	dao := &fakeDao{
		findBlock: func(query string) (*db.Block, error) {
			return &db.Block{Number: 9}, nil
		},
	}
	handler, _ := newGateway(dao)

	resp := get(handler, "/api/v0.1/search?query=9")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.EqualValues(t, 9, payload["block_number"])
}

func TestTokens(t *testing.T) {
	dao := &fakeDao{
		tokens: func() ([]*db.Token, error) {
			return []*db.Token{
				{TokenId: 0, Symbol: "ETH"},
				{TokenId: 1, Symbol: "DAI"},
			}, nil
		},
	}
	handler, _ := newGateway(dao)

	resp := get(handler, "/api/v0.1/tokens")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.Len(t, payload, 2)
	require.Equal(t, "ETH", payload[0]["symbol"])
}

func TestPoolExhaustionIs408(t *testing.T) {
	handler, pool := newGateway(&fakeDao{})

	first, err := pool.AccessStorageFragile()
	require.NoError(t, err)
	second, err := pool.AccessStorageFragile()
	require.NoError(t, err)
	defer first.Release()
	defer second.Release()

	resp := get(handler, "/api/v0.1/tokens")
	require.Equal(t, http.StatusRequestTimeout, resp.Code)
}

func TestFavicon(t *testing.T) {
	handler, _ := newGateway(&fakeDao{})
	resp := get(handler, "/favicon.ico")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Empty(t, resp.Body.Bytes())
}
