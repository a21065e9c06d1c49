package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"maritime-service/internal/service"
	"maritime-service/pkg/logger"
	"maritime-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TerminalRequest defines the structure for terminal creation requests
type TerminalRequest struct {
	Name      string  `json:"name" validate:"required"`
	PortID    uint    `json:"portId" validate:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	IsActive  bool    `json:"isActive"`
}

// TerminalEditRequest defines the structure for terminal update requests
type TerminalEditRequest struct {
	ID        uint    `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	PortID    uint    `json:"portId" validate:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	IsActive  bool    `json:"isActive"`
}

// TerminalHandler exposes the terminal workflow over HTTP
type TerminalHandler struct {
	terminals *service.TerminalService
}

// NewTerminalHandler creates a terminal handler backed by the given service
func NewTerminalHandler(terminals *service.TerminalService) *TerminalHandler {
	return &TerminalHandler{terminals: terminals}
}

// GetTerminals retrieves all terminals with their parent port
func (h *TerminalHandler) GetTerminals(c echo.Context) error {
	prometheus.RecordTerminalOperation("list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	views, err := h.terminals.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// GetTerminal retrieves a terminal by its ID
func (h *TerminalHandler) GetTerminal(c echo.Context) error {
	prometheus.RecordTerminalOperation("get")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid terminal ID")
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	view, err := h.terminals.Get(uint(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// CreateTerminal creates a new terminal under an existing port
func (h *TerminalHandler) CreateTerminal(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordTerminalOperation("create")

	var req TerminalRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request data")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	view, err := h.terminals.Create(service.TerminalInput{
		Name:      req.Name,
		PortID:    req.PortID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/terminals/%d", view.ID))
	return c.JSON(http.StatusCreated, view)
}

// UpdateTerminal updates an existing terminal
func (h *TerminalHandler) UpdateTerminal(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordTerminalOperation("update")

	var req TerminalEditRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request data")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.terminals.Update(service.TerminalEdit{
		ID:        req.ID,
		Name:      req.Name,
		PortID:    req.PortID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsActive:  req.IsActive,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Resource updated successfully"})
}

// DeleteTerminal deletes a terminal by its ID
func (h *TerminalHandler) DeleteTerminal(c echo.Context) error {
	prometheus.RecordTerminalOperation("delete")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid terminal ID")
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.terminals.Delete(uint(id)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Resource removed successfully"})
}
