package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/models"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/services"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/services/container"
	"github.com/ritikkamerkar15/residential-security-system/internal/error/code"
	"github.com/ritikkamerkar15/residential-security-system/internal/error/response"
)

// InterfaceGuardController defines the gate console controller interface
type InterfaceGuardController interface {
	GetResident()
	CreateVisitorRequest()
	GetVisitorRequests()
	GetGuards()
	UpdateGuardStatus()
}

// GuardController serves the security gate console
type GuardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewGuardController creates a new gate console controller
func NewGuardController(ctx *gin.Context, container *container.ServiceContainer) *GuardController {
	return &GuardController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateVisitorRequestRequest registers a visitor at the gate
type CreateVisitorRequestRequest struct {
	VisitorName    string `json:"visitor_name" binding:"required" example:"David Wilson"`
	PhoneNumber    string `json:"phone_number" binding:"required" example:"+91-9876512345"`
	PurposeOfVisit string `json:"purpose_of_visit" binding:"required" example:"Delivery"`
	FlatNumber     string `json:"flat_number" binding:"required" example:"A-101"`
	VisitorPhoto   string `json:"visitor_photo" example:"visitor_8821.jpg"`
	IDProof        string `json:"id_proof" example:"aadhaar_8821.jpg"`
	CheckedBy      string `json:"checked_by" example:"Ramesh Kumar (SEC001)"`
}

// UpdateGuardStatusRequest toggles a guard's duty status
type UpdateGuardStatusRequest struct {
	Status      string `json:"status" binding:"required" example:"on-duty"`
	CheckInTime string `json:"check_in_time" example:"8:20:07 AM"`
}

// HandleGuardFunc returns a gin handler for the requested gate console method
func HandleGuardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewGuardController(ctx, container)

		switch method {
		case "getResident":
			controller.GetResident()
		case "createVisitorRequest":
			controller.CreateVisitorRequest()
		case "getVisitorRequests":
			controller.GetVisitorRequests()
		case "getGuards":
			controller.GetGuards()
		case "updateGuardStatus":
			controller.UpdateGuardStatus()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// GetResident looks a flat up before registering a visitor against it
// @Summary      Look up a resident
// @Description  Returns the resident registered for a flat, with family members and temporary guests
// @Tags         Gate
// @Produce      json
// @Param        flat_number path string true "Flat number"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.Response
// @Router       /residents/{flat_number} [get]
// @Security     BearerAuth
func (c *GuardController) GetResident() {
	flatNumber := c.Ctx.Param("flat_number")

	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	resident := directory.GetResident(flatNumber)
	if resident == nil {
		response.Fail(c.Ctx, code.ErrResidentNotFound, nil)
		return
	}

	response.Success(c.Ctx, resident)
}

// CreateVisitorRequest registers a visitor and opens a pending request
// @Summary      Register a visitor
// @Description  Creates a pending visitor request against a flat; the resident name is snapshotted at submission
// @Tags         Gate
// @Accept       json
// @Produce      json
// @Param        request body CreateVisitorRequestRequest true "Visitor details"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.Response
// @Router       /visitors [post]
// @Security     BearerAuth
func (c *GuardController) CreateVisitorRequest() {
	var req CreateVisitorRequestRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	created := directory.AddVisitorRequest(&models.VisitorRequest{
		VisitorName:    req.VisitorName,
		PhoneNumber:    req.PhoneNumber,
		PurposeOfVisit: req.PurposeOfVisit,
		FlatNumber:     req.FlatNumber,
		VisitorPhoto:   req.VisitorPhoto,
		IDProof:        req.IDProof,
		CheckedBy:      req.CheckedBy,
	})
	if created == nil {
		response.FailWithMessage(c.Ctx, code.ErrResidentNotFound, "no resident registered for flat "+req.FlatNumber, nil)
		return
	}

	response.Success(c.Ctx, created)
}

// GetVisitorRequests lists all visitor requests, newest first
// @Summary      List visitor requests
// @Tags         Gate
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /visitors [get]
// @Security     BearerAuth
func (c *GuardController) GetVisitorRequests() {
	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	requests := directory.GetAllVisitorRequests()

	response.Success(c.Ctx, gin.H{
		"total":    len(requests),
		"requests": requests,
	})
}

// GetGuards lists every guard with duty status
// @Summary      List guards
// @Tags         Gate
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /guards [get]
// @Security     BearerAuth
func (c *GuardController) GetGuards() {
	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	guards := directory.GetAllGuards()

	response.Success(c.Ctx, gin.H{
		"total":  len(guards),
		"guards": guards,
	})
}

// UpdateGuardStatus toggles a guard on or off duty
// @Summary      Update guard duty status
// @Description  Sets on-duty with a check-in time, or off-duty which clears it
// @Tags         Gate
// @Accept       json
// @Produce      json
// @Param        employee_id path string true "Employee id"
// @Param        request body UpdateGuardStatusRequest true "New status"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /guards/{employee_id}/status [put]
// @Security     BearerAuth
func (c *GuardController) UpdateGuardStatus() {
	employeeID := c.Ctx.Param("employee_id")

	var req UpdateGuardStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	if !models.IsValidGuardStatus(req.Status) {
		response.ParamError(c.Ctx, "status must be on-duty or off-duty")
		return
	}

	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	if !directory.UpdateGuardStatus(employeeID, req.Status, req.CheckInTime) {
		response.Fail(c.Ctx, code.ErrGuardNotFound, nil)
		return
	}

	response.Success(c.Ctx, nil)
}
