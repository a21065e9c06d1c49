package model

import "time"

// Terminal represents a terminal owned by a port. A terminal name only has
// to be unique within its parent port, hence the composite index.
type Terminal struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"type:varchar(100);not null;uniqueIndex:idx_terminal_name_port"`
	PortID         uint   `gorm:"not null;uniqueIndex:idx_terminal_name_port"`
	Port           *Port
	Latitude       float64
	Longitude      float64
	IsActive       bool
	AddedDate      time.Time
	LastEditedDate *time.Time
}
