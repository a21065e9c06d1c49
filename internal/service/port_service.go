package service

import (
	"errors"
	"time"

	"maritime-service/internal/model"
	"maritime-service/pkg/httperr"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PortInput carries the fields a client may set when creating a port
type PortInput struct {
	Code string
	Name string
}

// PortEdit carries the fields a client may change on an existing port
type PortEdit struct {
	ID   uint
	Code string
	Name string
}

// PortService handles the business logic for managing ports
type PortService struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewPortService creates a port service bound to the given database handle
func NewPortService(db *gorm.DB, log *zap.Logger) *PortService {
	return &PortService{db: db, log: log}
}

// List retrieves all ports along with their terminals, in store order
func (s *PortService) List() ([]PortView, error) {
	var ports []model.Port
	if result := s.db.Preload("Terminals").Find(&ports); result.Error != nil {
		return nil, result.Error
	}

	views := make([]PortView, 0, len(ports))
	for i := range ports {
		views = append(views, toPortView(&ports[i]))
	}
	return views, nil
}

// Get retrieves a single port by its ID, including its terminals
func (s *PortService) Get(id uint) (*PortView, error) {
	var port model.Port
	result := s.db.Preload("Terminals").First(&port, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Requested resource not found.")
		}
		return nil, result.Error
	}

	view := toPortView(&port)
	return &view, nil
}

// Create validates and persists a new port
func (s *PortService) Create(in PortInput) (*PortView, error) {
	if len(in.Code) < 5 || len(in.Code) > 10 {
		return nil, httperr.BadRequest("Port code must be between 5 and 10 characters.")
	}
	if len(in.Name) < 5 || len(in.Name) > 100 {
		return nil, httperr.BadRequest("Port name must be between 5 and 100 characters.")
	}

	// Pre-check for a clean conflict error; the unique index on code is
	// the authoritative guard against races.
	var count int64
	if result := s.db.Model(&model.Port{}).Where("code = ?", in.Code).Count(&count); result.Error != nil {
		return nil, result.Error
	}
	if count > 0 {
		s.log.Warn("Port code already in use", zap.String("code", in.Code))
		return nil, httperr.BadRequest("Port code must be unique.")
	}

	port := model.Port{
		Code:      in.Code,
		Name:      in.Name,
		AddedDate: time.Now().UTC(),
	}
	if result := s.db.Create(&port); result.Error != nil {
		return nil, result.Error
	}

	s.log.Info("Port created",
		zap.Uint("id", port.ID),
		zap.String("code", port.Code),
		zap.String("name", port.Name))

	view := toPortView(&port)
	return &view, nil
}

// Update overwrites the name and code of an existing port
func (s *PortService) Update(in PortEdit) error {
	var existing model.Port
	result := s.db.First(&existing, in.ID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return httperr.NotFound("Requested resource not found to update.")
		}
		return result.Error
	}

	// A different port may not already own the target code
	var count int64
	if result := s.db.Model(&model.Port{}).Where("code = ? AND id != ?", in.Code, in.ID).Count(&count); result.Error != nil {
		return result.Error
	}
	if count > 0 {
		s.log.Warn("Port code already in use",
			zap.Uint("id", in.ID),
			zap.String("code", in.Code))
		return httperr.BadRequest("Port code must be unique.")
	}

	now := time.Now().UTC()
	existing.Name = in.Name
	existing.Code = in.Code
	existing.LastEditedDate = &now

	if result := s.db.Save(&existing); result.Error != nil {
		return result.Error
	}

	s.log.Info("Port updated", zap.Uint("id", existing.ID), zap.String("code", existing.Code))
	return nil
}

// Delete removes a port by its ID. Removal of its terminals is handled by
// the store's cascade constraint.
func (s *PortService) Delete(id uint) error {
	var port model.Port
	result := s.db.First(&port, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return httperr.NotFound("Requested resource not found to delete.")
		}
		return result.Error
	}

	if result := s.db.Delete(&port); result.Error != nil {
		return result.Error
	}

	s.log.Info("Port deleted", zap.Uint("id", id), zap.String("code", port.Code))
	return nil
}
