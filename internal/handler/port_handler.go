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

// PortRequest defines the structure for port creation requests
type PortRequest struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// PortEditRequest defines the structure for port update requests
type PortEditRequest struct {
	ID   uint   `json:"id" validate:"required"`
	Code string `json:"code" validate:"required,min=5,max=10"`
	Name string `json:"name" validate:"required,min=5,max=100"`
}

// PortHandler exposes the port workflow over HTTP
type PortHandler struct {
	ports *service.PortService
}

// NewPortHandler creates a port handler backed by the given service
func NewPortHandler(ports *service.PortService) *PortHandler {
	return &PortHandler{ports: ports}
}

// GetPorts retrieves all ports with their terminals
func (h *PortHandler) GetPorts(c echo.Context) error {
	prometheus.RecordPortOperation("list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	views, err := h.ports.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// GetPort retrieves a port by its ID
func (h *PortHandler) GetPort(c echo.Context) error {
	prometheus.RecordPortOperation("get")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid port ID")
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	view, err := h.ports.Get(uint(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// CreatePort creates a new port
func (h *PortHandler) CreatePort(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPortOperation("create")

	var req PortRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request data")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	view, err := h.ports.Create(service.PortInput{Code: req.Code, Name: req.Name})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/ports/%d", view.ID))
	return c.JSON(http.StatusCreated, view)
}

// UpdatePort updates an existing port
func (h *PortHandler) UpdatePort(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPortOperation("update")

	var req PortEditRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request data")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.ports.Update(service.PortEdit{ID: req.ID, Code: req.Code, Name: req.Name}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Resource updated successfully"})
}

// DeletePort deletes a port by its ID
func (h *PortHandler) DeletePort(c echo.Context) error {
	prometheus.RecordPortOperation("delete")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid port ID")
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.ports.Delete(uint(id)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Resource removed successfully"})
}
