package controllers

import (
	"net/http"

	"github.com/bayoffindiaofficial/bengal-biz-finder/entity"
	"github.com/bayoffindiaofficial/bengal-biz-finder/pkg/resp"
	"github.com/bayoffindiaofficial/bengal-biz-finder/services"
	"github.com/bayoffindiaofficial/bengal-biz-finder/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

func userPayload(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "email": u.Email, "firstName": u.FirstName,
		"lastName": u.LastName, "phoneNumber": u.PhoneNumber, "role": u.Role,
	}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Service.Register(req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.Created(c, userPayload(user))
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Service.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  userPayload(user),
	})
}

// GET /auth/me (protected)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, userPayload(user))
}
