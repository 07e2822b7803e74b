package models

import "github.com/google/uuid"

type DeploymentArtifact struct {
	Base
	Name            string    `gorm:"type:varchar(255);not null"`
	ContractName    string    `gorm:"type:varchar(255);not null"`
	Address         string    `gorm:"type:varchar(66);not null;uniqueIndex:idx_deployment_artifacts_key"`
	TransactionHash string    `gorm:"type:varchar(66);not null;uniqueIndex:idx_deployment_artifacts_key"`
	BlockchainID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_deployment_artifacts_key"`
	DeploymentID    uuid.UUID `gorm:"type:uuid;not null;index"`
	BlockNumber     int64
	GasUsed         string `gorm:"type:varchar(78)"`
	Deployer        string `gorm:"type:varchar(66)"`
	SolcInputHash   string `gorm:"type:varchar(66)"`
	Args            string `gorm:"type:jsonb"`
	Data            string `gorm:"type:jsonb;not null"` // full artifact as read from disk
}

func (DeploymentArtifact) TableName() string {
	return "deployment_artifacts"
}

type Abi struct {
	Base
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_abis_name_chain"`
	BlockchainID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_abis_name_chain"`
	Data         string    `gorm:"type:jsonb;not null"`
}

func (Abi) TableName() string {
	return "abis"
}

type Method struct {
	Base
	Name            string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_methods_name_abi"`
	AbiID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_methods_name_abi"`
	Code            string    `gorm:"type:varchar(10)"` // 4-byte selector
	Inputs          string    `gorm:"type:jsonb"`
	Outputs         string    `gorm:"type:jsonb"`
	StateMutability string    `gorm:"type:varchar(20)"`
	Data            string    `gorm:"type:jsonb;not null"`
}

func (Method) TableName() string {
	return "methods"
}

type EventDefinition struct {
	Base
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_event_definitions_name_abi"`
	AbiID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_definitions_name_abi"`
	Code      string    `gorm:"type:varchar(66)"` // topic0
	Inputs    string    `gorm:"type:jsonb"`
	Anonymous bool      `gorm:"not null"`
	Data      string    `gorm:"type:jsonb;not null"`
}

func (EventDefinition) TableName() string {
	return "event_definitions"
}

type Bytecode struct {
	Base
	Address      string    `gorm:"type:varchar(66);not null;uniqueIndex:idx_bytecodes_address_chain"`
	BlockchainID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bytecodes_address_chain"`
	AbiID        uuid.UUID `gorm:"type:uuid;not null"`
	ContractName string    `gorm:"type:varchar(255)"`
	Bytecode     string    `gorm:"type:text;not null"`
}

func (Bytecode) TableName() string {
	return "bytecodes"
}

type SourceCode struct {
	Base
	Address      string    `gorm:"type:varchar(66);not null;uniqueIndex:idx_source_codes_address_chain"`
	BlockchainID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_source_codes_address_chain"`
	File         string    `gorm:"type:text"`
	Content      string    `gorm:"type:text"`
	Keccak256    string    `gorm:"type:varchar(66);column:keccak256"`
	License      string    `gorm:"type:varchar(100)"`
}

func (SourceCode) TableName() string {
	return "source_codes"
}

type Devdoc struct {
	Base
	DeploymentArtifactID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_devdocs_artifact"`
	Data                 string    `gorm:"type:jsonb;not null"`
}

func (Devdoc) TableName() string {
	return "devdocs"
}

type Userdoc struct {
	Base
	DeploymentArtifactID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_userdocs_artifact"`
	Data                 string    `gorm:"type:jsonb;not null"`
}

func (Userdoc) TableName() string {
	return "userdocs"
}
