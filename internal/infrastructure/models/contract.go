package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SmartContract struct {
	Base
	Name                  string    `gorm:"type:varchar(255);not null"`
	Code                  string    `gorm:"type:varchar(255);not null"`
	Address               string    `gorm:"type:varchar(66);not null;uniqueIndex:idx_smart_contracts_address_chain"`
	BlockchainID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_smart_contracts_address_chain"`
	AbiID                 uuid.UUID `gorm:"type:uuid;not null"`
	DeploymentArtifactID  uuid.UUID `gorm:"type:uuid;not null"`
	DeploymentTransaction *string   `gorm:"type:varchar(66)"`
}

func (SmartContract) TableName() string {
	return "smart_contracts"
}

type DiamondFactory struct {
	Base
	Address         string         `gorm:"type:varchar(66);not null;uniqueIndex:idx_diamond_factories_address_chain"`
	BlockchainID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_diamond_factories_address_chain"`
	NetworkID       int64          `gorm:"not null"`
	AbiID           uuid.UUID      `gorm:"type:uuid;not null"`
	SmartContractID uuid.UUID      `gorm:"type:uuid;not null"`
	DeploymentID    uuid.UUID      `gorm:"type:uuid;not null"`
	Symbols         pq.StringArray `gorm:"type:text[]"` // last enumeration from getSymbols()
}

func (DiamondFactory) TableName() string {
	return "diamond_factories"
}

type Diamond struct {
	Base
	Address          string    `gorm:"type:varchar(66);not null;uniqueIndex:idx_diamonds_address_chain"`
	BlockchainID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_diamonds_address_chain"`
	Symbol           string    `gorm:"type:varchar(100);not null"`
	DiamondFactoryID uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (Diamond) TableName() string {
	return "diamonds"
}

type DiamondFacet struct {
	Base
	Address         string    `gorm:"type:varchar(66);not null;uniqueIndex:idx_diamond_facets_address_chain"`
	BlockchainID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_diamond_facets_address_chain"`
	AbiID           uuid.UUID `gorm:"type:uuid;not null"`
	SmartContractID uuid.UUID `gorm:"type:uuid;not null"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Code            string    `gorm:"type:varchar(255);not null"`
}

func (DiamondFacet) TableName() string {
	return "diamond_facets"
}
