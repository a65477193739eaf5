package controllers

import (
	"net/http"

	"HospitalHub/models"
	"HospitalHub/services"
	"HospitalHub/util"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	histories *services.HistoryService
}

func PatientHistory(router gin.IRouter, histories *services.HistoryService) {
	ctl := &HistoryController{histories: histories}
	group := router.Group("/patient-history")
	{
		group.POST("/", ctl.CreateHistory)
		group.GET("/:patient_id", ctl.FetchHistory)
		group.PUT("/:patient_id/add-record", ctl.AddMedicalRecord)
	}
}

func (ctl *HistoryController) CreateHistory(c *gin.Context) {
	var in models.PatientHistoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	history, err := ctl.histories.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(history))
}

func (ctl *HistoryController) FetchHistory(c *gin.Context) {
	history, err := ctl.histories.Get(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(history))
}

/*
* Bind the record
* Append it and answer with the whole history
 */
func (ctl *HistoryController) AddMedicalRecord(c *gin.Context) {
	var rec models.MedicalRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		badRequest(c, err)
		return
	}
	history, err := ctl.histories.AddRecord(c.Request.Context(), c.Param("patient_id"), rec)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(history))
}
