// Package model contains GORM model definitions shared across packages.
// All models are driver-agnostic: they work with both PostgreSQL and SQLite.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserRole is the role a user holds inside an organization.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleMember  UserRole = "member"
)

// ReportType identifies the quality method a report follows.
type ReportType string

const (
	ReportTypeEightD   ReportType = "8D"
	ReportTypeFiveS    ReportType = "5S"
	ReportTypeKaizen   ReportType = "Kaizen"
	ReportTypeFishbone ReportType = "Fishbone"
)

// Report statuses. The column is free-form; only StatusFinalized carries a
// rule (it is terminal).
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusFinalized = "finalized"
)

// Organization represents a tenant.
type Organization struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:text;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`

	Users          []User          `gorm:"foreignKey:OrganizationID"`
	QualityReports []QualityReport `gorm:"foreignKey:OrganizationID"`
	HSEReports     []HSEReport     `gorm:"foreignKey:OrganizationID"`
}

// User is the GORM model for the users table.
type User struct {
	ID             uint      `gorm:"primaryKey"`
	Email          string    `gorm:"type:text;not null;uniqueIndex"`
	HashedPassword string    `gorm:"type:text;not null"`
	Role           UserRole  `gorm:"type:text;not null;default:'member'"`
	OrganizationID *uint     `gorm:"index"`
	CreatedAt      time.Time `gorm:"not null"`

	Organization *Organization `gorm:"foreignKey:OrganizationID"`
}

// QualityReport is a quality-method report. Data holds the report-type
// specific document; only 8D documents are produced today.
type QualityReport struct {
	ID             uint                           `gorm:"primaryKey"`
	Title          string                         `gorm:"type:text;not null;index"`
	ReportType     ReportType                     `gorm:"type:text;not null"`
	Status         string                         `gorm:"type:text;not null;default:'draft'"`
	Data           datatypes.JSONType[ReportData] `gorm:"not null"`
	OrganizationID *uint                          `gorm:"index"`
	AuthorID       *uint                          `gorm:"index"`
	CreatedAt      time.Time                      `gorm:"not null"`
	UpdatedAt      time.Time

	Organization *Organization `gorm:"foreignKey:OrganizationID"`
	Author       *User         `gorm:"foreignKey:AuthorID"`
}

// HSEReport is a persisted workplace safety finding.
type HSEReport struct {
	ID                uint                        `gorm:"primaryKey"`
	ImagePath         string                      `gorm:"type:text;not null"`
	NonConformities   datatypes.JSONSlice[string] `gorm:"not null"`
	UserObservations  *string                     `gorm:"type:text"`
	CorrectiveActions datatypes.JSONSlice[string] `gorm:"not null"`
	Status            string                      `gorm:"type:text;not null;default:'draft'"`
	OrganizationID    *uint                       `gorm:"index"`
	AuthorID          *uint                       `gorm:"index"`
	CreatedAt         time.Time                   `gorm:"not null"`
	UpdatedAt         time.Time

	Organization *Organization `gorm:"foreignKey:OrganizationID"`
	Author       *User         `gorm:"foreignKey:AuthorID"`
}

// TableName pins the table name shared with the SQL migrations.
func (HSEReport) TableName() string { return "hse_reports" }
