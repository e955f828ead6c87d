package db

import (
	"encoding/hex"
	"sort"

	"gorm.io/gorm"

	"github.com/syncstate/ledger-hub/types"
	"github.com/syncstate/ledger-hub/util"
)

type LedgerDao interface {
	BlockDB
	AccountDB
	TxDB
	TokenDB
}

type LedgerSvcDB struct {
	db *gorm.DB
}

func NewLedgerSvcDB(db *gorm.DB) LedgerDao {
	return &LedgerSvcDB{
		db,
	}
}

type BlockDB interface {
	GetLastCommittedBlock() (uint64, error)
	GetLastVerifiedBlock() (uint64, error)
	LoadBlockRange(maxBlock uint64, limit uint32) ([]*Block, error)
	GetBlockTransactions(blockNumber uint64) ([]*ExecutedTx, error)
	FindBlockByHeightOrHash(query string) (*Block, error)
}

func (d *LedgerSvcDB) GetLastCommittedBlock() (uint64, error) {
	block := Block{}
	err := d.db.Model(Block{}).Order("number desc").Take(&block).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return block.Number, nil
}

func (d *LedgerSvcDB) GetLastVerifiedBlock() (uint64, error) {
	block := Block{}
	err := d.db.Model(Block{}).Where("status = ?", Verified).Order("number desc").Take(&block).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return block.Number, nil
}

func (d *LedgerSvcDB) LoadBlockRange(maxBlock uint64, limit uint32) ([]*Block, error) {
	blocks := make([]*Block, 0)
	err := d.db.Where("number <= ?", maxBlock).Order("number desc").Limit(int(limit)).Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (d *LedgerSvcDB) GetBlockTransactions(blockNumber uint64) ([]*ExecutedTx, error) {
	txs := make([]*ExecutedTx, 0)
	err := d.db.Where("block_number = ?", blockNumber).Order("block_index asc").Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// FindBlockByHeightOrHash resolves an explorer search query, first as a block
// number, then as a block hash. A nil block means no match.
func (d *LedgerSvcDB) FindBlockByHeightOrHash(query string) (*Block, error) {
	block := Block{}
	if number, err := util.StringToUint64(query); err == nil {
		err = d.db.Model(Block{}).Where("number = ?", number).Take(&block).Error
		if err == nil {
			return &block, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}
	hash, err := types.ParseHash(query)
	if err != nil {
		return nil, nil
	}
	err = d.db.Model(Block{}).Where("hash = ?", hex.EncodeToString(hash.Bytes())).Take(&block).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &block, nil
}

type AccountDB interface {
	GetAccountStateByAddress(address string) (*AccountState, error)
	GetAccountTxHistory(address string, offset, limit int64) ([]*ExecutedTx, error)
}

func (d *LedgerSvcDB) GetAccountStateByAddress(address string) (*AccountState, error) {
	state := AccountState{}

	committed := Account{}
	err := d.db.Model(Account{}).Where("address = ?", address).Take(&committed).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if err == nil {
		state.Committed = &committed
	}

	verified := VerifiedAccount{}
	err = d.db.Model(VerifiedAccount{}).Where("address = ?", address).Take(&verified).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if err == nil {
		state.Verified = &verified
	}
	return &state, nil
}

func (d *LedgerSvcDB) GetAccountTxHistory(address string, offset, limit int64) ([]*ExecutedTx, error) {
	txs := make([]*ExecutedTx, 0)
	err := d.db.Where("from_address = ? or to_address = ?", address, address).
		Order("id desc").Offset(int(offset)).Limit(int(limit)).Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

type TxDB interface {
	GetTxReceipt(hash []byte) (*TxReceipt, error)
	GetTxByHash(hash []byte) (*ExecutedTx, error)
	GetBlockExecutedOps(blockNumber uint64) ([]*ExecutedOp, error)
	GetPriorityOpReceipt(serialId uint32) (*PriorityOpReceipt, error)
	CountTotalTransactions() (uint64, error)
	CountOutstandingProofs(lastVerified uint64) (uint64, error)
}

func (d *LedgerSvcDB) GetTxReceipt(hash []byte) (*TxReceipt, error) {
	tx := ExecutedTx{}
	err := d.db.Model(ExecutedTx{}).Where("tx_hash = ?", hex.EncodeToString(hash)).Take(&tx).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	lastVerified, err := d.GetLastVerifiedBlock()
	if err != nil {
		return nil, err
	}
	return &TxReceipt{
		TxHash:      tx.TxHash,
		BlockNumber: tx.BlockNumber,
		Success:     tx.Success,
		FailReason:  tx.FailReason,
		Verified:    tx.BlockNumber <= lastVerified,
	}, nil
}

func (d *LedgerSvcDB) GetTxByHash(hash []byte) (*ExecutedTx, error) {
	tx := ExecutedTx{}
	err := d.db.Model(ExecutedTx{}).Where("tx_hash = ?", hex.EncodeToString(hash)).Take(&tx).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetBlockExecutedOps returns a block's full execution order, transactions
// and priority operations merged by block index.
func (d *LedgerSvcDB) GetBlockExecutedOps(blockNumber uint64) ([]*ExecutedOp, error) {
	txs := make([]*ExecutedTx, 0)
	if err := d.db.Where("block_number = ?", blockNumber).Order("block_index asc").Find(&txs).Error; err != nil {
		return nil, err
	}
	priorityOps := make([]*PriorityOp, 0)
	if err := d.db.Where("block_number = ?", blockNumber).Order("block_index asc").Find(&priorityOps).Error; err != nil {
		return nil, err
	}

	ops := make([]*ExecutedOp, 0, len(txs)+len(priorityOps))
	for _, tx := range txs {
		ops = append(ops, &ExecutedOp{BlockIndex: tx.BlockIndex, Tx: tx})
	}
	for _, op := range priorityOps {
		ops = append(ops, &ExecutedOp{BlockIndex: op.BlockIndex, PriorityOp: op})
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].BlockIndex < ops[j].BlockIndex
	})
	return ops, nil
}

func (d *LedgerSvcDB) GetPriorityOpReceipt(serialId uint32) (*PriorityOpReceipt, error) {
	op := PriorityOp{}
	err := d.db.Model(PriorityOp{}).Where("serial_id = ?", serialId).Take(&op).Error
	if err == gorm.ErrRecordNotFound {
		return &PriorityOpReceipt{}, nil
	}
	if err != nil {
		return nil, err
	}
	lastVerified, err := d.GetLastVerifiedBlock()
	if err != nil {
		return nil, err
	}
	return &PriorityOpReceipt{
		Committed: true,
		Verified:  op.BlockNumber <= lastVerified,
	}, nil
}

func (d *LedgerSvcDB) CountTotalTransactions() (uint64, error) {
	var count int64
	if err := d.db.Model(ExecutedTx{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return uint64(count), nil
}

// CountOutstandingProofs counts transactions committed past the last verified
// block, i.e. still waiting for a proof.
func (d *LedgerSvcDB) CountOutstandingProofs(lastVerified uint64) (uint64, error) {
	var count int64
	if err := d.db.Model(ExecutedTx{}).Where("block_number > ?", lastVerified).Count(&count).Error; err != nil {
		return 0, err
	}
	return uint64(count), nil
}

type TokenDB interface {
	LoadTokens() ([]*Token, error)
}

func (d *LedgerSvcDB) LoadTokens() ([]*Token, error) {
	tokens := make([]*Token, 0)
	if err := d.db.Order("token_id asc").Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}
