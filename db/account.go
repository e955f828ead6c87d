package db

// Account is the committed state of a ledger account. Addresses are stored
// as lowercase hex without the 0x prefix.
type Account struct {
	Id        int64  `json:"-"`
	AccountId uint32 `json:"account_id" gorm:"NOT NULL;uniqueIndex:idx_account_id"`
	Address   string `json:"address" gorm:"NOT NULL;index:idx_account_address;size:40"`
	Nonce     uint64 `json:"nonce"`
	Balance   string `json:"balance"`
}

func (*Account) TableName() string {
	return "account"
}

// VerifiedAccount mirrors Account at the last verified block.
type VerifiedAccount struct {
	Id        int64  `json:"-"`
	AccountId uint32 `json:"account_id" gorm:"NOT NULL;uniqueIndex:idx_verified_account_id"`
	Address   string `json:"address" gorm:"NOT NULL;index:idx_verified_account_address;size:40"`
	Nonce     uint64 `json:"nonce"`
	Balance   string `json:"balance"`
}

func (*VerifiedAccount) TableName() string {
	return "verified_account"
}

// AccountState pairs the two depths of one account. Either pointer is nil
// when no record exists at that depth.
type AccountState struct {
	Committed *Account
	Verified  *VerifiedAccount
}
