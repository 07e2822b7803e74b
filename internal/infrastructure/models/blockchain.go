package models

type Blockchain struct {
	Base
	NetworkID   int64  `gorm:"not null;uniqueIndex:idx_blockchains_network"` // EVM chain id
	Name        string `gorm:"type:varchar(100);not null"`
	RPCURL      string `gorm:"type:text;column:rpc_url"`
	ExplorerURL string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null"`
}

func (Blockchain) TableName() string {
	return "blockchains"
}
