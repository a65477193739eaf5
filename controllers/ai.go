package controllers

import (
	"net/http"

	"HospitalHub/models"
	"HospitalHub/services"
	"HospitalHub/util"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	assistant *services.AssistantService
}

func AI(router gin.IRouter, assistant *services.AssistantService) {
	ctl := &AIController{assistant: assistant}
	group := router.Group("/ai")
	{
		group.POST("/query", ctl.Query)
		group.POST("/patient/:id/query", ctl.QueryPatient)
	}
}

// Query only fails on a malformed body; the assistant itself always answers.
func (ctl *AIController) Query(c *gin.Context) {
	var q models.AIQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(ctl.assistant.Query(c.Request.Context(), q)))
}

func (ctl *AIController) QueryPatient(c *gin.Context) {
	var q models.AIQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(ctl.assistant.QueryPatient(c.Request.Context(), c.Param("id"), q)))
}
