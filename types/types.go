package types

// NetworkStatus is the point-in-time summary of chain progress published by
// the status updater. A snapshot is immutable once published and is replaced
// wholesale on every refresh tick.
type NetworkStatus struct {
	NextBlockAtMax    *uint64 `json:"next_block_at_max"`
	LastCommitted     uint64  `json:"last_committed"`
	LastVerified      uint64  `json:"last_verified"`
	TotalTransactions uint64  `json:"total_transactions"`
	OutstandingTxs    uint64  `json:"outstanding_txs"`
}

type TestnetConfigResponse struct {
	ContractAddress string `json:"contractAddress"`
}

// AccountRecord is the serializable view of an account at a given depth
// (committed or verified).
type AccountRecord struct {
	Address string `json:"address"`
	Nonce   uint64 `json:"nonce"`
	Balance string `json:"balance"`
}

// AccountStateResponse reports both depths of an account. Id is absent when
// the account has no on-chain record yet; committed and verified are then
// empty records tagged with the queried address, never null.
type AccountStateResponse struct {
	Id        *uint32        `json:"id,omitempty"`
	Committed *AccountRecord `json:"committed"`
	Verified  *AccountRecord `json:"verified"`
}
