package service

import (
	"errors"
	"time"

	"maritime-service/internal/model"
	"maritime-service/pkg/httperr"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TerminalInput carries the fields a client may set when creating a terminal
type TerminalInput struct {
	Name      string
	PortID    uint
	Latitude  float64
	Longitude float64
	IsActive  bool
}

// TerminalEdit carries the fields a client may change on an existing terminal
type TerminalEdit struct {
	ID        uint
	Name      string
	PortID    uint
	Latitude  float64
	Longitude float64
	IsActive  bool
}

// TerminalService handles the business logic for managing terminals
type TerminalService struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewTerminalService creates a terminal service bound to the given database handle
func NewTerminalService(db *gorm.DB, log *zap.Logger) *TerminalService {
	return &TerminalService{db: db, log: log}
}

// List retrieves all terminals with their parent port attached
func (s *TerminalService) List() ([]TerminalView, error) {
	var terminals []model.Terminal
	if result := s.db.Preload("Port").Find(&terminals); result.Error != nil {
		return nil, result.Error
	}

	views := make([]TerminalView, 0, len(terminals))
	for i := range terminals {
		views = append(views, toTerminalView(&terminals[i]))
	}
	return views, nil
}

// Get retrieves a single terminal by its ID with its parent port attached
func (s *TerminalService) Get(id uint) (*TerminalView, error) {
	var terminal model.Terminal
	result := s.db.Preload("Port").First(&terminal, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Requested resource not found.")
		}
		return nil, result.Error
	}

	view := toTerminalView(&terminal)
	return &view, nil
}

// Create persists a new terminal under an existing port. The created
// terminal is re-fetched so the response embeds the resolved port rather
// than just the foreign key.
func (s *TerminalService) Create(in TerminalInput) (*TerminalView, error) {
	var count int64
	if result := s.db.Model(&model.Terminal{}).
		Where("name = ? AND port_id = ?", in.Name, in.PortID).
		Count(&count); result.Error != nil {
		return nil, result.Error
	}
	if count > 0 {
		s.log.Warn("Terminal name already in use for port",
			zap.String("name", in.Name),
			zap.Uint("port_id", in.PortID))
		return nil, httperr.BadRequest("Terminal name must be unique for the port.")
	}

	terminal := model.Terminal{
		Name:      in.Name,
		PortID:    in.PortID,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		IsActive:  in.IsActive,
		AddedDate: time.Now().UTC(),
	}
	if result := s.db.Create(&terminal); result.Error != nil {
		return nil, result.Error
	}

	s.log.Info("Terminal created",
		zap.Uint("id", terminal.ID),
		zap.String("name", terminal.Name),
		zap.Uint("port_id", terminal.PortID))

	return s.Get(terminal.ID)
}

// Update overwrites the mutable fields of an existing terminal
func (s *TerminalService) Update(in TerminalEdit) error {
	var existing model.Terminal
	result := s.db.First(&existing, in.ID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return httperr.NotFound("Requested resource not found to update.")
		}
		return result.Error
	}

	// A different terminal may not already own the name under the target port
	var count int64
	if result := s.db.Model(&model.Terminal{}).
		Where("name = ? AND port_id = ? AND id != ?", in.Name, in.PortID, in.ID).
		Count(&count); result.Error != nil {
		return result.Error
	}
	if count > 0 {
		s.log.Warn("Terminal name already in use for port",
			zap.Uint("id", in.ID),
			zap.String("name", in.Name),
			zap.Uint("port_id", in.PortID))
		return httperr.BadRequest("Terminal name must be unique for the port.")
	}

	now := time.Now().UTC()
	existing.Name = in.Name
	existing.PortID = in.PortID
	existing.Latitude = in.Latitude
	existing.Longitude = in.Longitude
	existing.IsActive = in.IsActive
	existing.LastEditedDate = &now

	if result := s.db.Save(&existing); result.Error != nil {
		return result.Error
	}

	s.log.Info("Terminal updated", zap.Uint("id", existing.ID), zap.String("name", existing.Name))
	return nil
}

// Delete removes a terminal by its ID
func (s *TerminalService) Delete(id uint) error {
	var terminal model.Terminal
	result := s.db.First(&terminal, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return httperr.NotFound("Requested resource not found to delete.")
		}
		return result.Error
	}

	if result := s.db.Delete(&terminal); result.Error != nil {
		return result.Error
	}

	s.log.Info("Terminal deleted", zap.Uint("id", id), zap.String("name", terminal.Name))
	return nil
}
