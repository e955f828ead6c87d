package db

type Status int

const (
	Committed Status = 0
	Verified  Status = 1 // a block becomes verified once its proof is accepted on chain
)

type Block struct {
	Id           int64  `json:"-"`
	Number       uint64 `json:"block_number" gorm:"NOT NULL;uniqueIndex:idx_block_number"`
	Hash         string `json:"block_hash" gorm:"NOT NULL;index:idx_block_hash;size:64"`
	NewStateRoot string `json:"new_state_root" gorm:"size:64"`
	CommittedAt  int64  `json:"committed_at"`
	VerifiedAt   int64  `json:"verified_at"`

	Status Status `json:"status"`
}

func (*Block) TableName() string {
	return "block"
}
