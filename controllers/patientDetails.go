package controllers

import (
	"net/http"

	"HospitalHub/models"
	"HospitalHub/services"
	"HospitalHub/util"

	"github.com/gin-gonic/gin"
)

type DetailsController struct {
	details *services.DetailsService
}

func PatientDetails(router gin.IRouter, details *services.DetailsService) {
	ctl := &DetailsController{details: details}
	group := router.Group("/patient-details")
	{
		group.POST("/", ctl.CreateDetails)
		group.GET("/:patient_id", ctl.FetchDetails)
		group.PUT("/:patient_id", ctl.UpdateDetails)
	}
}

func (ctl *DetailsController) CreateDetails(c *gin.Context) {
	var in models.PatientDetailsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	details, err := ctl.details.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(details))
}

func (ctl *DetailsController) FetchDetails(c *gin.Context) {
	details, err := ctl.details.Get(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(details))
}

func (ctl *DetailsController) UpdateDetails(c *gin.Context) {
	var in models.PatientDetailsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	details, err := ctl.details.Update(c.Request.Context(), c.Param("patient_id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(details))
}
