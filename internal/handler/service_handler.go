package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mimarfolio/internal/errors"
	"mimarfolio/internal/repository"
	"mimarfolio/internal/service"
)

// ServiceHandler handles service offering endpoints.
type ServiceHandler struct {
	serviceService service.ServiceService
}

// NewServiceHandler creates a new service handler.
func NewServiceHandler(serviceService service.ServiceService) *ServiceHandler {
	return &ServiceHandler{serviceService: serviceService}
}

// List godoc
// @Summary List services, newest first
// @Tags services
// @Produce json
// @Param active query bool false "Only active services"
// @Success 200 {array} model.Service
// @Failure 500 {object} errors.ErrorResponse
// @Router /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	filter := repository.ActiveFilter{
		Active: boolQuery(c, "active", "true"),
		Limit:  limitQuery(c),
	}

	services, err := h.serviceService.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, services)
}

// Create godoc
// @Summary Create a service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateServiceInput true "Service"
// @Success 201 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Router /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var in service.CreateServiceInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&in); err != nil {
		return respondError(c, err)
	}

	svc, err := h.serviceService.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, svc)
}

// Update godoc
// @Summary Update a service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body service.UpdateServiceInput true "Fields to change"
// @Success 200 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	var in service.UpdateServiceInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&in); err != nil {
		return respondError(c, err)
	}

	svc, err := h.serviceService.Update(c.Request().Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, svc)
}

// Delete godoc
// @Summary Delete a service
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	if err := h.serviceService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Service deleted successfully"})
}
