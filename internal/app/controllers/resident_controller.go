package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/models"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/services"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/services/container"
	"github.com/ritikkamerkar15/residential-security-system/internal/error/code"
	"github.com/ritikkamerkar15/residential-security-system/internal/error/response"
)

// InterfaceResidentController defines the resident console controller interface
type InterfaceResidentController interface {
	GetFlatVisitors()
	UpdateVisitorStatus()
}

// ResidentController serves the resident approval console
type ResidentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewResidentController creates a new resident console controller
func NewResidentController(ctx *gin.Context, container *container.ServiceContainer) *ResidentController {
	return &ResidentController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateVisitorStatusRequest finalizes a pending visitor request
type UpdateVisitorStatusRequest struct {
	Status string `json:"status" binding:"required" example:"approved"`
}

// HandleResidentFunc returns a gin handler for the requested resident console method
func HandleResidentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResidentController(ctx, container)

		switch method {
		case "getFlatVisitors":
			controller.GetFlatVisitors()
		case "updateVisitorStatus":
			controller.UpdateVisitorStatus()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// GetFlatVisitors lists one flat's visitor requests, newest first
// @Summary      List a flat's visitor requests
// @Tags         Resident
// @Produce      json
// @Param        flat_number path string true "Flat number"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.Response
// @Router       /flats/{flat_number}/visitors [get]
// @Security     BearerAuth
func (c *ResidentController) GetFlatVisitors() {
	flatNumber := c.Ctx.Param("flat_number")

	// Residents may only read their own flat; admins may read any
	if c.Ctx.GetString("role") == models.RoleUser && c.Ctx.GetString("flatNumber") != flatNumber {
		response.FailWithMessage(c.Ctx, code.ErrTokenInvalid, "cannot read another flat's visitor requests", nil)
		return
	}

	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	requests := directory.GetVisitorRequestsForFlat(flatNumber)

	response.Success(c.Ctx, gin.H{
		"total":    len(requests),
		"requests": requests,
	})
}

// UpdateVisitorStatus finalizes a pending request
// @Summary      Approve, reject or defer a visitor request
// @Description  Moves a pending request to approved, rejected or left-at-gate; finalized requests cannot move again
// @Tags         Resident
// @Accept       json
// @Produce      json
// @Param        id path string true "Visitor request id"
// @Param        request body UpdateVisitorStatusRequest true "Terminal status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /visitors/{id}/status [put]
// @Security     BearerAuth
func (c *ResidentController) UpdateVisitorStatus() {
	id := c.Ctx.Param("id")

	var req UpdateVisitorStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	if !models.IsTerminalVisitorStatus(req.Status) {
		response.Fail(c.Ctx, code.ErrVisitorStatusInvalid, nil)
		return
	}

	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	if !directory.UpdateVisitorRequestStatus(id, req.Status) {
		// The directory does not distinguish an unknown id from an already
		// finalized request; report both in one message.
		response.FailWithMessage(c.Ctx, code.ErrVisitorRequestFinalized,
			"visitor request does not exist or has already been finalized", nil)
		return
	}

	response.Success(c.Ctx, nil)
}
