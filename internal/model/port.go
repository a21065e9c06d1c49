package model

import "time"

// Port represents the port record stored in the database. The code column
// is the natural business key and must stay unique across all ports.
type Port struct {
	ID             uint   `gorm:"primaryKey"`
	Code           string `gorm:"type:varchar(10);uniqueIndex;not null"`
	Name           string `gorm:"type:varchar(100);not null"`
	AddedDate      time.Time
	LastEditedDate *time.Time
	Terminals      []Terminal `gorm:"constraint:OnDelete:CASCADE"`
}
