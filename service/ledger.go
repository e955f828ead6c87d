package service

import (
	"encoding/hex"

	"github.com/syncstate/ledger-hub/config"
	"github.com/syncstate/ledger-hub/db"
	"github.com/syncstate/ledger-hub/logging"
	"github.com/syncstate/ledger-hub/types"
)

// LedgerSvc is the global ledger query service used by the REST handlers.
var LedgerSvc Ledger

const (
	// MaxHistoryLimit caps account-history page sizes.
	MaxHistoryLimit = 100
	// MaxBlocksLimit caps block-range page sizes.
	MaxBlocksLimit = 100
	// DefaultBlocksLimit applies when a block-range query gives no limit.
	DefaultBlocksLimit = 20
	// MaxBlockSentinel stands in for "latest" when no max_block is given.
	MaxBlockSentinel = 999_999_999
)

type Ledger interface {
	TestnetConfig() *types.TestnetConfigResponse
	GetAccountState(addressQuery string) (*types.AccountStateResponse, error)
	GetTokens() ([]*db.Token, error)
	GetAccountTxHistory(addressQuery string, offset, limit int64) ([]*db.ExecutedTx, error)
	GetExecutedTxReceipt(rawHashQuery string) (*db.TxReceipt, error)
	GetTxByHash(hashQuery string) (*db.ExecutedTx, error)
	GetPriorityOpReceipt(serialId uint32) (*db.PriorityOpReceipt, error)
	GetBlockTxAtIndex(blockNumber uint64, txIndex uint32) (*db.ExecutedOp, error)
	GetBlockRange(maxBlock uint64, limit uint32) ([]*db.Block, error)
	GetBlockByNumber(blockNumber uint64) (*db.Block, error)
	GetBlockTransactions(blockNumber uint64) ([]*db.ExecutedTx, error)
	SearchBlock(query string) (*db.Block, error)
}

type LedgerService struct {
	pool   *db.ConnectionPool
	config *config.ServerConfig
}

func NewLedgerService(pool *db.ConnectionPool, config *config.ServerConfig) Ledger {
	return &LedgerService{
		pool:   pool,
		config: config,
	}
}

// accessStorage acquires a connection in fragile mode. Every handler-facing
// method goes through it so pool exhaustion uniformly becomes a 408.
func (s *LedgerService) accessStorage() (*db.StorageProcessor, error) {
	storage, err := s.pool.AccessStorageFragile()
	if err != nil {
		return nil, StorageTimeoutErr
	}
	return storage, nil
}

func (s *LedgerService) TestnetConfig() *types.TestnetConfigResponse {
	return &types.TestnetConfigResponse{
		ContractAddress: s.config.ContractAddress,
	}
}

func (s *LedgerService) GetAccountState(addressQuery string) (*types.AccountStateResponse, error) {
	address, err := types.ParseAddress(addressQuery)
	if err != nil {
		return nil, BadRequestErr
	}
	storage, err := s.accessStorage()
	if err != nil {
		return nil, err
	}
	defer storage.Release()

	addressHex := hex.EncodeToString(address.Bytes())
	state, err := storage.GetAccountStateByAddress(addressHex)
	if err != nil {
		return nil, InternalErr
	}

	// An account with no on-chain record still yields empty records tagged
	// with the queried address, never null.
	resp := &types.AccountStateResponse{
		Committed: &types.AccountRecord{Address: addressHex, Balance: "0"},
		Verified:  &types.AccountRecord{Address: addressHex, Balance: "0"},
	}
	if state.Committed != nil {
		accountId := state.Committed.AccountId
		resp.Id = &accountId
		resp.Committed = &types.AccountRecord{
			Address: state.Committed.Address,
			Nonce:   state.Committed.Nonce,
			Balance: state.Committed.Balance,
		}
	}
	if state.Verified != nil {
		resp.Verified = &types.AccountRecord{
			Address: state.Verified.Address,
			Nonce:   state.Verified.Nonce,
			Balance: state.Verified.Balance,
		}
	}
	return resp, nil
}

func (s *LedgerService) GetTokens() ([]*db.Token, error) {
	storage, err := s.accessStorage()
	if err != nil {
		return nil, err
	}
	defer storage.Release()

	tokens, err := storage.LoadTokens()
	if err != nil {
		return nil, InternalErr
	}
	return tokens, nil
}

func (s *LedgerService) GetAccountTxHistory(addressQuery string, offset, limit int64) ([]*db.ExecutedTx, error) {
	address, err := types.ParseAddress(addressQuery)
	if err != nil {
		return nil, BadRequestErr
	}
	if limit > MaxHistoryLimit {
		return nil, BadRequestErr
	}
	storage, err := s.accessStorage()
	if err != nil {
		return nil, err
	}
	defer storage.Release()

	txs, err := storage.GetAccountTxHistory(hex.EncodeToString(address.Bytes()), offset, limit)
	if err != nil {
		return nil, InternalErr
	}
	return txs, nil
}

// GetExecutedTxReceipt never reports a storage miss or failure as an error;
// the endpoint contract is a null payload when no receipt can be produced.
func (s *LedgerService) GetExecutedTxReceipt(rawHashQuery string) (*db.TxReceipt, error) {
	hash, err := types.DecodeRawTxHash(rawHashQuery)
	if err != nil {
		return nil, BadRequestErr
	}
	storage, err := s.accessStorage()
	if err != nil {
		return nil, err
	}
	defer storage.Release()

	receipt, err := storage.GetTxReceipt(hash)
	if err != nil {
		return nil, nil
	}
	return receipt, nil
}

func (s *LedgerService) GetTxByHash(hashQuery string) (*db.ExecutedTx, error) {
	hash, err := types.ParseHash(hashQuery)
	if err != nil {
		return nil, BadRequestErr
	}
	storage, err := s.accessStorage()
	if err != nil {
		return nil, err
	}
	defer storage.Release()

	tx, err := storage.GetTxByHash(hash.Bytes())
	if err != nil {
		return nil, InternalErr
	}
	return tx, nil
}

func (s *LedgerService) GetPriorityOpReceipt(serialId uint32) (*db.PriorityOpReceipt, error) {
	storage, err := s.accessStorage()
	if err != nil {
		return nil, err
	}
	defer storage.Release()

	receipt, err := storage.GetPriorityOpReceipt(serialId)
	if err != nil {
		return nil, InternalErr
	}
	return receipt, nil
}

func (s *LedgerService) GetBlockTxAtIndex(blockNumber uint64, txIndex uint32) (*db.ExecutedOp, error) {
	storage, err := s.accessStorage()
	if err != nil {
		return nil, err
	}
	defer storage.Release()

	ops, err := storage.GetBlockExecutedOps(blockNumber)
	if err != nil {
		return nil, InternalErr
	}
	if int(txIndex) >= len(ops) {
		return nil, NotFoundErr
	}
	return ops[txIndex], nil
}

func (s *LedgerService) GetBlockRange(maxBlock uint64, limit uint32) ([]*db.Block, error) {
	if limit > MaxBlocksLimit {
		return nil, BadRequestErr
	}
	storage, err := s.accessStorage()
	if err != nil {
		return nil, err
	}
	defer storage.Release()

	blocks, err := storage.LoadBlockRange(maxBlock, limit)
	if err != nil {
		logging.Logger.Errorf("load block range failed, max_block=%d limit=%d err=%s", maxBlock, limit, err.Error())
		return nil, InternalErr
	}
	return blocks, nil
}

func (s *LedgerService) GetBlockByNumber(blockNumber uint64) (*db.Block, error) {
	storage, err := s.accessStorage()
	if err != nil {
		return nil, err
	}
	defer storage.Release()

	blocks, err := storage.LoadBlockRange(blockNumber, 1)
	if err != nil {
		return nil, InternalErr
	}
	if len(blocks) == 0 {
		return nil, NotFoundErr
	}
	return blocks[0], nil
}

func (s *LedgerService) GetBlockTransactions(blockNumber uint64) ([]*db.ExecutedTx, error) {
	storage, err := s.accessStorage()
	if err != nil {
		return nil, err
	}
	defer storage.Release()

	txs, err := storage.GetBlockTransactions(blockNumber)
	if err != nil {
		return nil, InternalErr
	}
	return txs, nil
}

func (s *LedgerService) SearchBlock(query string) (*db.Block, error) {
	storage, err := s.accessStorage()
	if err != nil {
		return nil, err
	}
	defer storage.Release()

	block, err := storage.FindBlockByHeightOrHash(query)
	if err != nil {
		return nil, InternalErr
	}
	if block == nil {
		return nil, NotFoundErr
	}
	return block, nil
}
