package controllers

import (
	"errors"
	"net/http"

	"github.com/Saaaaaad3/Plattera/pkg/resp"
	"github.com/Saaaaaad3/Plattera/services"
	"github.com/Saaaaaad3/Plattera/utils"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
}

type VerifyRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
	Otp          string `json:"otp" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	isNewUser, err := a.Auth.RequestOTP(req.MobileNumber)
	if err != nil {
		var throttled *services.ThrottledError
		switch {
		case errors.As(err, &throttled):
			resp.TooManyRequests(c, throttled.Error())
		case errors.Is(err, services.ErrInvalidMobile):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"isNewUser": isNewUser})
}

// POST /auth/verify
func (a *AuthController) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, err := a.Auth.VerifyOTP(req.MobileNumber, req.Otp)
	if err != nil {
		var throttled *services.ThrottledError
		switch {
		case errors.As(err, &throttled):
			resp.TooManyRequests(c, throttled.Error())
		case errors.Is(err, services.ErrInvalidOTP):
			resp.Unauthorized(c, "invalid otp")
		case errors.Is(err, services.ErrInvalidMobile):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	resp.OK(c, gin.H{
		"userId":       utils.CurrentUserID(c),
		"role":         utils.CurrentRole(c),
		"mobileNumber": c.GetString("mobileNumber"),
	})
}
