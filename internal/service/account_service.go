package service

import (
	"errors"

	"maritime-service/internal/model"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Credentials carries the registration and login fields supplied by a client.
// The password never leaves this layer in plaintext.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// AccountService handles user registration and credential verification
type AccountService struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewAccountService creates an account service bound to the given database handle
func NewAccountService(db *gorm.DB, log *zap.Logger) *AccountService {
	return &AccountService{db: db, log: log}
}

// UserExists reports whether any account already has the given username or
// email; either match flags a duplicate.
func (s *AccountService) UserExists(creds Credentials) (bool, error) {
	var count int64
	result := s.db.Model(&model.UserInfo{}).
		Where("username = ? OR email = ?", creds.Username, creds.Email).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Register hashes the password and persists a new account. Shape and length
// validation happens at the boundary before this is called; the unique
// indexes on username and email are the authoritative duplicate guard.
func (s *AccountService) Register(creds Credentials) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.UserInfo{
		Username:     creds.Username,
		Email:        creds.Email,
		PasswordHash: string(hash),
	}
	if result := s.db.Create(&user); result.Error != nil {
		return result.Error
	}

	s.log.Info("User registered", zap.String("username", user.Username))
	return nil
}

// VerifyCredentials looks the account up by username only and checks the
// supplied password against the stored hash. It fails closed: an unknown
// username and a wrong password are indistinguishable to the caller.
func (s *AccountService) VerifyCredentials(creds Credentials) (bool, error) {
	var user model.UserInfo
	result := s.db.Where("username = ?", creds.Username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			s.log.Warn("User not found", zap.String("username", creds.Username))
			return false, nil
		}
		return false, result.Error
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		s.log.Warn("Invalid password", zap.String("username", creds.Username))
		return false, nil
	}
	return true, nil
}
