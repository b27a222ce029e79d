package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mimarfolio/internal/errors"
	"mimarfolio/internal/repository"
	"mimarfolio/internal/service"
)

// ContactHandler handles the public contact form and the admin message inbox.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// SubmitResponse acknowledges a contact form submission.
type SubmitResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// Submit godoc
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body service.SubmitMessageInput true "Message"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var in service.SubmitMessageInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&in); err != nil {
		return respondError(c, err)
	}

	message, err := h.contactService.Submit(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, SubmitResponse{
		Message: "Mesajınız başarıyla gönderildi.",
		ID:      message.ID,
	})
}

// List godoc
// @Summary List contact messages, newest first
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param read query bool false "Set to false to list only unread messages"
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} model.ContactMessage
// @Failure 401 {object} errors.ErrorResponse
// @Router /contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	filter := repository.MessageFilter{
		Read:  boolQuery(c, "read", "false"),
		Limit: limitQuery(c),
	}

	messages, err := h.contactService.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messages)
}

// MarkRead godoc
// @Summary Mark a contact message as read
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} model.ContactMessage
// @Failure 404 {object} errors.ErrorResponse
// @Router /contact/{id}/read [patch]
func (h *ContactHandler) MarkRead(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	message, err := h.contactService.MarkRead(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, message)
}

// Delete godoc
// @Summary Delete a contact message
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /contact/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	if err := h.contactService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Message deleted successfully"})
}
