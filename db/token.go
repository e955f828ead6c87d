package db

type Token struct {
	Id       int64  `json:"-"`
	TokenId  uint32 `json:"id" gorm:"NOT NULL;uniqueIndex:idx_token_id"`
	Address  string `json:"address" gorm:"size:40"`
	Symbol   string `json:"symbol" gorm:"size:16"`
	Decimals uint8  `json:"decimals"`
}

func (*Token) TableName() string {
	return "token"
}
