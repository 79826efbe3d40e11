package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/models"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/services"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/services/container"
	"github.com/ritikkamerkar15/residential-security-system/internal/error/code"
	"github.com/ritikkamerkar15/residential-security-system/internal/error/response"
)

// InterfaceAuthController defines the authentication controller interface
type InterfaceAuthController interface {
	Login()
	Register()
	Logout()
	CurrentUser()
}

// AuthController handles login, registration and session endpoints
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new authentication controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest carries the credentials for any principal type
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required" example:"A-101"`
	Password   string `json:"password" binding:"required" example:"resident123"`
}

// RegisterRequest is a self-service account application
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"rahul.verma"`
	Name     string `json:"name" binding:"required" example:"Rahul Verma"`
	Role     string `json:"role" binding:"required" example:"user"`
	Flat     string `json:"flat" example:"B-203"`
	Phone    string `json:"phone" binding:"required" example:"+91-9876500000"`
	Password string `json:"password" binding:"required" example:"Secret@123"`

	EmployeeID string `json:"employee_id" example:"SEC004"`
	AdminID    string `json:"admin_id" example:"admin002"`

	PropertyPaper  string `json:"property_paper"`
	ProfilePhoto   string `json:"profile_photo"`
	IdentityProof  string `json:"identity_proof"`
	JobOfferLetter string `json:"job_offer_letter"`
	SecurityIDCard string `json:"security_id_card"`
}

// HandleAuthFunc returns a gin handler for the requested auth method
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		case "logout":
			controller.Logout()
		case "currentUser":
			controller.CurrentUser()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// Login authenticates any principal
// @Summary      Log in
// @Description  Authenticates an admin id, employee id, flat number or registered username and returns a bearer token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	session := authService.Login(req.Identifier, req.Password)
	if session == nil {
		response.Fail(c.Ctx, code.ErrUserPasswordIncorrect, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token": session.Token,
		"user":  session.Principal,
	})
}

// Register submits a pending account application
// @Summary      Register an account
// @Description  Creates a pending account that an administrator must approve before login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Account details"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Router       /auth/register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	if !models.IsValidRole(req.Role) {
		response.ParamError(c.Ctx, "role must be user, security or admin")
		return
	}

	candidate := &models.User{
		Username:       req.Username,
		Name:           req.Name,
		Role:           req.Role,
		Flat:           req.Flat,
		Phone:          req.Phone,
		Password:       req.Password,
		EmployeeID:     req.EmployeeID,
		AdminID:        req.AdminID,
		PropertyPaper:  req.PropertyPaper,
		ProfilePhoto:   req.ProfilePhoto,
		IdentityProof:  req.IdentityProof,
		JobOfferLetter: req.JobOfferLetter,
		SecurityIDCard: req.SecurityIDCard,
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	created := authService.Register(candidate)
	if created == nil {
		response.Fail(c.Ctx, code.ErrUserAlreadyExist, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":     created.ID,
		"status": created.Status,
	})
}

// Logout clears the caller's session slot
// @Summary      Log out
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (c *AuthController) Logout() {
	role := c.Ctx.GetString("role")
	principalID := c.Ctx.GetString("principalID")

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	authService.Logout(role, principalID)
	response.Success(c.Ctx, nil)
}

// CurrentUser restores the caller's principal from the session store
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (c *AuthController) CurrentUser() {
	role := c.Ctx.GetString("role")
	principalID := c.Ctx.GetString("principalID")

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	principal := authService.CurrentUser(role, principalID)
	if principal == nil {
		response.Unauthorized(c.Ctx)
		return
	}

	response.Success(c.Ctx, principal)
}
