package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/models"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/services"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/services/container"
	"github.com/ritikkamerkar15/residential-security-system/internal/error/code"
	"github.com/ritikkamerkar15/residential-security-system/internal/error/response"
)

// InterfaceAdminController defines the admin console controller interface
type InterfaceAdminController interface {
	GetStatistics()
	GetResidents()
	CreateResident()
	UpdateResident()
	CreateGuard()
	GetUsers()
	UpdateUserStatus()
	GetAlerts()
	CreateAlert()
	ExportCSV()
}

// AdminController serves the society administration console
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin console controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateResidentRequest registers a flat with its owning resident
type CreateResidentRequest struct {
	FlatNumber  string `json:"flat_number" binding:"required" example:"D-402"`
	Name        string `json:"name" binding:"required" example:"Priya Sharma"`
	PhoneNumber string `json:"phone_number" binding:"required" example:"+91-9876501234"`
	Password    string `json:"password" binding:"required" example:"resident123"`
}

// CreateGuardRequest registers a security guard
type CreateGuardRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required" example:"SEC004"`
	Name        string `json:"name" binding:"required" example:"Suresh Patel"`
	Shift       string `json:"shift" binding:"required" example:"night"`
	PhoneNumber string `json:"phone_number" binding:"required" example:"+91-9876509876"`
	Password    string `json:"password" binding:"required" example:"guard123"`
}

// UpdateUserStatusRequest moves an account application between approval states
type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required" example:"active"`
}

// UpdateResidentRequest patches a resident's contact details. Omitted fields
// keep their current value; the flat number itself cannot change.
type UpdateResidentRequest struct {
	Name        string `json:"name" example:"Priya Sharma"`
	PhoneNumber string `json:"phone_number" example:"+91-9876501234"`
	Password    string `json:"password" example:"resident456"`
}

// CreateAlertRequest records a society incident
type CreateAlertRequest struct {
	Type     string `json:"type" binding:"required" example:"intrusion"`
	Message  string `json:"message" binding:"required" example:"Motion detected at main entrance"`
	Source   string `json:"source" binding:"required" example:"Camera 01"`
	Priority string `json:"priority" binding:"required" example:"high"`
}

// HandleAdminFunc returns a gin handler for the requested admin console method
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getStatistics":
			controller.GetStatistics()
		case "getResidents":
			controller.GetResidents()
		case "createResident":
			controller.CreateResident()
		case "updateResident":
			controller.UpdateResident()
		case "createGuard":
			controller.CreateGuard()
		case "getUsers":
			controller.GetUsers()
		case "updateUserStatus":
			controller.UpdateUserStatus()
		case "getAlerts":
			controller.GetAlerts()
		case "createAlert":
			controller.CreateAlert()
		case "exportCSV":
			controller.ExportCSV()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// GetStatistics returns the dashboard aggregate snapshot
// @Summary      Dashboard statistics
// @Description  Computes request, guard and resident aggregates fresh on every call
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  models.Statistics
// @Router       /statistics [get]
// @Security     BearerAuth
func (c *AdminController) GetStatistics() {
	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	response.Success(c.Ctx, directory.GetStatistics())
}

// GetResidents lists the full resident directory
// @Summary      List residents
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /residents [get]
// @Security     BearerAuth
func (c *AdminController) GetResidents() {
	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	residents := directory.GetAllResidents()

	response.Success(c.Ctx, gin.H{
		"total":     len(residents),
		"residents": residents,
	})
}

// CreateResident registers a new flat
// @Summary      Register a resident
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body CreateResidentRequest true "Resident details"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Router       /residents [post]
// @Security     BearerAuth
func (c *AdminController) CreateResident() {
	var req CreateResidentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	resident := &models.Resident{
		FlatNumber:  req.FlatNumber,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	}
	if !directory.AddResident(resident) {
		response.Fail(c.Ctx, code.ErrFlatAlreadyExist, nil)
		return
	}

	response.Success(c.Ctx, resident)
}

// UpdateResident patches a resident's contact details
// @Summary      Update a resident
// @Description  Omitted fields keep their current value; the flat number is immutable
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        flat_number path string true "Flat number"
// @Param        request body UpdateResidentRequest true "Fields to change"
// @Success      200  {object}  models.Resident
// @Failure      404  {object}  response.Response
// @Router       /residents/{flat_number} [put]
// @Security     BearerAuth
func (c *AdminController) UpdateResident() {
	flatNumber := c.Ctx.Param("flat_number")

	var req UpdateResidentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}
	if req.Name == "" && req.PhoneNumber == "" && req.Password == "" {
		response.ParamError(c.Ctx, "nothing to update")
		return
	}

	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	if !directory.UpdateResident(flatNumber, req.Name, req.PhoneNumber, req.Password) {
		response.Fail(c.Ctx, code.ErrResidentNotFound, nil)
		return
	}

	response.Success(c.Ctx, directory.GetResident(flatNumber))
}

// CreateGuard registers a new security guard
// @Summary      Register a guard
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body CreateGuardRequest true "Guard details"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Router       /guards [post]
// @Security     BearerAuth
func (c *AdminController) CreateGuard() {
	var req CreateGuardRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	if !models.IsValidShift(req.Shift) {
		response.ParamError(c.Ctx, "shift must be morning, evening or night")
		return
	}

	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	guard := &models.Guard{
		EmployeeID:  req.EmployeeID,
		Name:        req.Name,
		Shift:       req.Shift,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Status:      models.GuardOffDuty,
	}
	if !directory.AddGuard(guard) {
		response.Fail(c.Ctx, code.ErrGuardAlreadyExist, nil)
		return
	}

	response.Success(c.Ctx, guard)
}

// GetUsers lists account applications for review
// @Summary      List registered accounts
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /users [get]
// @Security     BearerAuth
func (c *AdminController) GetUsers() {
	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	users := directory.GetAllUsers()

	response.Success(c.Ctx, gin.H{
		"total": len(users),
		"users": users,
	})
}

// UpdateUserStatus approves or blocks an account application
// @Summary      Update account approval status
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path string true "User id"
// @Param        request body UpdateUserStatusRequest true "New status"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/status [put]
// @Security     BearerAuth
func (c *AdminController) UpdateUserStatus() {
	id := c.Ctx.Param("id")

	var req UpdateUserStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	if req.Status != models.UserActive && req.Status != models.UserPending && req.Status != models.UserBlocked {
		response.ParamError(c.Ctx, "status must be active, pending or blocked")
		return
	}

	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	if !directory.UpdateUserStatus(id, req.Status) {
		response.Fail(c.Ctx, code.ErrUserNotFound, nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// GetAlerts lists society incidents, newest first
// @Summary      List alerts
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /alerts [get]
// @Security     BearerAuth
func (c *AdminController) GetAlerts() {
	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	alerts := directory.GetAllAlerts()

	response.Success(c.Ctx, gin.H{
		"total":  len(alerts),
		"alerts": alerts,
	})
}

// CreateAlert records a new society incident
// @Summary      Record an alert
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body CreateAlertRequest true "Alert details"
// @Success      200  {object}  models.Alert
// @Failure      400  {object}  response.Response
// @Router       /alerts [post]
// @Security     BearerAuth
func (c *AdminController) CreateAlert() {
	var req CreateAlertRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	if !models.IsValidAlertType(req.Type) {
		response.ParamError(c.Ctx, "type must be intrusion, fire, medical, maintenance or sos")
		return
	}
	if !models.IsValidAlertPriority(req.Priority) {
		response.ParamError(c.Ctx, "priority must be low, medium or high")
		return
	}

	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	alert := directory.AddAlert(&models.Alert{
		Type:     req.Type,
		Message:  req.Message,
		Source:   req.Source,
		Priority: req.Priority,
	})

	response.Success(c.Ctx, alert)
}

// ExportCSV downloads a sectioned CSV report
// @Summary      Export directory data as CSV
// @Description  type selects visitors, residents, guards or all sections
// @Tags         Admin
// @Produce      text/csv
// @Param        type query string false "Data type, defaults to all"
// @Success      200  {string}  string
// @Router       /export [get]
// @Security     BearerAuth
func (c *AdminController) ExportCSV() {
	dataType := c.Ctx.DefaultQuery("type", services.ExportAll)
	switch dataType {
	case services.ExportVisitors, services.ExportResidents, services.ExportGuards, services.ExportAll:
	default:
		response.ParamError(c.Ctx, "type must be visitors, residents, guards or all")
		return
	}

	directory := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	csv := directory.ExportToCSV(dataType)

	filename := fmt.Sprintf("society-%s-%s.csv", dataType, time.Now().Format("2006-01-02"))
	c.Ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Ctx.Data(200, "text/csv; charset=utf-8", []byte(csv))
}
