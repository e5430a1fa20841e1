package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Srinandan2003/CollabSphere/helper"
	"github.com/Srinandan2003/CollabSphere/middlewares"
	"github.com/Srinandan2003/CollabSphere/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users    *services.UserService
	secret   string
	tokenTTL time.Duration
}

func NewAuthController(users *services.UserService, secret string, tokenTTL time.Duration) *AuthController {
	return &AuthController{users: users, secret: secret, tokenTTL: tokenTTL}
}

type signUpRequest struct {
	Username string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ctl *AuthController) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := ctl.users.SignUp(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrConflict) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"success": false, "message": err.Error()})
		return
	}

	token, err := helper.GenerateToken(user.ID, ctl.secret, ctl.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to issue token"})
		return
	}
	helper.SetAuthCookie(c, token, ctl.tokenTTL)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User created successfully",
		"user":    user.Sanitized(),
		"token":   token,
	})
}

func (ctl *AuthController) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := ctl.users.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	token, err := helper.GenerateToken(user.ID, ctl.secret, ctl.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to issue token"})
		return
	}
	helper.SetAuthCookie(c, token, ctl.tokenTTL)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged in successfully",
		"user":    user.Sanitized(),
		"token":   token,
	})
}

func (ctl *AuthController) LogOut(c *gin.Context) {
	helper.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

func (ctl *AuthController) Profile(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Sanitized()})
}
