package models

import "github.com/google/uuid"

// Organization is owned by the platform; the import pipeline only reads it
type Organization struct {
	Base
	Name string `gorm:"type:varchar(255);not null"`
}

func (Organization) TableName() string {
	return "organizations"
}

type Project struct {
	Base
	Name           string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_projects_name_org"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_projects_name_org"`
}

func (Project) TableName() string {
	return "projects"
}

type Deployment struct {
	Base
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_deployments_name_project"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_deployments_name_project"`
}

func (Deployment) TableName() string {
	return "deployments"
}
