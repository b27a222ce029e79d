package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mimarfolio/internal/errors"
	"mimarfolio/internal/repository"
	"mimarfolio/internal/service"
)

// TeamHandler handles team member endpoints.
type TeamHandler struct {
	teamService service.TeamService
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// List godoc
// @Summary List team members, newest first
// @Tags team
// @Produce json
// @Param active query bool false "Only active members"
// @Success 200 {array} model.TeamMember
// @Failure 500 {object} errors.ErrorResponse
// @Router /team [get]
func (h *TeamHandler) List(c echo.Context) error {
	filter := repository.ActiveFilter{
		Active: boolQuery(c, "active", "true"),
		Limit:  limitQuery(c),
	}

	members, err := h.teamService.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, members)
}

// Create godoc
// @Summary Create a team member
// @Tags team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateTeamMemberInput true "Team member"
// @Success 201 {object} model.TeamMember
// @Failure 400 {object} errors.ErrorResponse
// @Router /team [post]
func (h *TeamHandler) Create(c echo.Context) error {
	var in service.CreateTeamMemberInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&in); err != nil {
		return respondError(c, err)
	}

	member, err := h.teamService.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, member)
}

// Update godoc
// @Summary Update a team member
// @Tags team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Param request body service.UpdateTeamMemberInput true "Fields to change"
// @Success 200 {object} model.TeamMember
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /team/{id} [put]
func (h *TeamHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	var in service.UpdateTeamMemberInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&in); err != nil {
		return respondError(c, err)
	}

	member, err := h.teamService.Update(c.Request().Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, member)
}

// Delete godoc
// @Summary Delete a team member
// @Tags team
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /team/{id} [delete]
func (h *TeamHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	if err := h.teamService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Team member deleted successfully"})
}
