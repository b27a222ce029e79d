package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mimarfolio/internal/errors"
	"mimarfolio/internal/repository"
	"mimarfolio/internal/service"
)

// TestimonialHandler handles testimonial endpoints.
type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

// NewTestimonialHandler creates a new testimonial handler.
func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// List godoc
// @Summary List testimonials, newest first
// @Tags testimonials
// @Produce json
// @Param active query bool false "Only active testimonials"
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} model.Testimonial
// @Failure 500 {object} errors.ErrorResponse
// @Router /testimonials [get]
func (h *TestimonialHandler) List(c echo.Context) error {
	filter := repository.ActiveFilter{
		Active: boolQuery(c, "active", "true"),
		Limit:  limitQuery(c),
	}

	testimonials, err := h.testimonialService.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, testimonials)
}

// Create godoc
// @Summary Create a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateTestimonialInput true "Testimonial"
// @Success 201 {object} model.Testimonial
// @Failure 400 {object} errors.ErrorResponse
// @Router /testimonials [post]
func (h *TestimonialHandler) Create(c echo.Context) error {
	var in service.CreateTestimonialInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&in); err != nil {
		return respondError(c, err)
	}

	testimonial, err := h.testimonialService.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, testimonial)
}

// Update godoc
// @Summary Update a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Param request body service.UpdateTestimonialInput true "Fields to change"
// @Success 200 {object} model.Testimonial
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /testimonials/{id} [put]
func (h *TestimonialHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	var in service.UpdateTestimonialInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&in); err != nil {
		return respondError(c, err)
	}

	testimonial, err := h.testimonialService.Update(c.Request().Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, testimonial)
}

// Delete godoc
// @Summary Delete a testimonial
// @Tags testimonials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	if err := h.testimonialService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Testimonial deleted successfully"})
}
