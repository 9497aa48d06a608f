package controller

import (
	"errors"
	"net/http"

	"github.com/infektyd/FoundationWriting/internal/service"
	"github.com/infektyd/FoundationWriting/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *service.AuthService
}

func NewAuthController(auth *service.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Register handles POST /api/auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Auth.Register(input)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Conflict(c, "Email already registered")
			return
		}
		util.LogInternalError(c, err)
		return
	}

	util.Created(c, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// Login handles POST /api/auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	token, user, err := ctl.Auth.Login(input)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		util.LogInternalError(c, err)
		return
	}

	util.Success(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
