package model

// UserInfo represents a registered account. Only the bcrypt hash of the
// password is persisted, never the plaintext.
type UserInfo struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

// TableName keeps the historical table name
func (UserInfo) TableName() string {
	return "user_info"
}
