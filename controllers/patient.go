package controllers

import (
	"net/http"

	"HospitalHub/models"
	"HospitalHub/services"
	"HospitalHub/util"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	patients *services.PatientService
	summary  *services.SummaryService
}

func Patient(router gin.IRouter, patients *services.PatientService, summary *services.SummaryService) {
	ctl := &PatientController{patients: patients, summary: summary}
	patient := router.Group("/patients")
	{
		patient.POST("/", ctl.CreatePatient)
		patient.GET("/", ctl.FetchAllPatients)
		patient.GET("/:id", ctl.FetchPatient)
		patient.PUT("/:id", ctl.UpdatePatient)
		patient.DELETE("/:id", ctl.DeletePatient)
		patient.GET("/:id/full-summary", ctl.FullSummary)
	}
}

func (ctl *PatientController) CreatePatient(c *gin.Context) {
	var in models.PatientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	patient, err := ctl.patients.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(patient))
}

func (ctl *PatientController) FetchAllPatients(c *gin.Context) {
	patients, err := ctl.patients.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(patients))
}

func (ctl *PatientController) FetchPatient(c *gin.Context) {
	patient, err := ctl.patients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(patient))
}

func (ctl *PatientController) UpdatePatient(c *gin.Context) {
	var in models.PatientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	patient, err := ctl.patients.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(patient))
}

func (ctl *PatientController) DeletePatient(c *gin.Context) {
	if err := ctl.patients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *PatientController) FullSummary(c *gin.Context) {
	summary, err := ctl.summary.FullSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(summary))
}
