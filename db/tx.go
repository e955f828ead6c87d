package db

// ExecutedTx is a transaction included in a block. Hashes and addresses are
// stored as lowercase hex without the 0x prefix.
type ExecutedTx struct {
	Id          int64  `json:"-"`
	TxHash      string `json:"tx_hash" gorm:"NOT NULL;index:idx_executed_tx_hash;size:64"`
	BlockNumber uint64 `json:"block_number" gorm:"NOT NULL;index:idx_executed_tx_block"`
	BlockIndex  uint32 `json:"block_index"`
	FromAddress string `json:"from" gorm:"index:idx_executed_tx_from;size:40"`
	ToAddress   string `json:"to" gorm:"size:40"`
	TokenId     uint32 `json:"token_id"`
	Amount      string `json:"amount"`
	Fee         string `json:"fee"`
	Success     bool   `json:"success"`
	FailReason  string `json:"fail_reason,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

func (*ExecutedTx) TableName() string {
	return "executed_tx"
}

// PriorityOp is an operation initiated on the root chain and executed by the
// ledger, identified by its serial id.
type PriorityOp struct {
	Id          int64  `json:"-"`
	SerialId    uint32 `json:"serial_id" gorm:"NOT NULL;uniqueIndex:idx_priority_op_serial_id"`
	OpType      string `json:"op_type"`
	BlockNumber uint64 `json:"block_number" gorm:"index:idx_priority_op_block"`
	BlockIndex  uint32 `json:"block_index"`
	TxHash      string `json:"tx_hash" gorm:"size:64"`
	CreatedAt   int64  `json:"created_at"`
}

func (*PriorityOp) TableName() string {
	return "priority_op"
}

// ExecutedOp is one slot of a block's execution order, either a transaction
// or a priority operation.
type ExecutedOp struct {
	BlockIndex uint32      `json:"block_index"`
	Tx         *ExecutedTx `json:"tx,omitempty"`
	PriorityOp *PriorityOp `json:"priority_op,omitempty"`
}

// TxReceipt reports the execution outcome of a transaction together with its
// verification progress.
type TxReceipt struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
	Success     bool   `json:"success"`
	FailReason  string `json:"fail_reason,omitempty"`
	Verified    bool   `json:"verified"`
}

// PriorityOpReceipt reports how far a priority operation has progressed.
type PriorityOpReceipt struct {
	Committed bool `json:"committed"`
	Verified  bool `json:"verified"`
}
