package controllers

import (
	"net/http"

	"HospitalHub/auth"
	"HospitalHub/models"
	"HospitalHub/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *auth.Service
}

func Auth(router gin.IRouter, svc *auth.Service) {
	ctl := &AuthController{auth: svc}
	group := router.Group("/auth")
	{
		group.POST("/register", ctl.Register)
		group.POST("/token", ctl.Token)
		group.GET("/me", auth.RequireAuth(svc), ctl.Me)
	}
}

func (ctl *AuthController) Register(c *gin.Context) {
	var in models.Register
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.auth.Register(c.Request.Context(), in); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(gin.H{"message": util.USER_REGISTERED}))
}

/*
* Credentials arrive as form fields (OAuth2 password flow) or JSON
* The token body is returned bare so standard OAuth2 clients can read it
 */
func (ctl *AuthController) Token(c *gin.Context) {
	var in models.Login
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, err)
		return
	}
	token, err := ctl.auth.IssueToken(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		if util.StatusFor(err) == http.StatusUnauthorized {
			c.Header("WWW-Authenticate", "Bearer")
		}
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

func (ctl *AuthController) Me(c *gin.Context) {
	user, ok := auth.CurrentStaff(c)
	if !ok {
		fail(c, util.Unauthorized("%s", util.MISSING_BEARER))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"username": user.Username, "email": user.Email}))
}
