package models

import (
	"time"

	"gorm.io/datatypes"
)

type ScanReport struct {
	ID             uint           `gorm:"primaryKey;autoIncrement"`
	UserID         uint           `gorm:"not null;index"`
	ScanType       string         `gorm:"type:varchar(20);not null"`
	Target         string         `gorm:"type:text;not null"`
	Status         string         `gorm:"type:varchar(20);not null"`
	OverallSummary string         `gorm:"type:text;not null"`
	Details        datatypes.JSON `gorm:"type:json"`
	CreatedAt      time.Time
}

func (ScanReport) TableName() string {
	return "scan_reports"
}
