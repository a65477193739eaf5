package controllers

import (
	"net/http"

	"HospitalHub/services"
	"HospitalHub/util"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	patients *services.PatientService
	doctors  *services.DoctorService
}

func Search(router gin.IRouter, patients *services.PatientService, doctors *services.DoctorService) {
	ctl := &SearchController{patients: patients, doctors: doctors}
	search := router.Group("/search")
	{
		search.GET("/patients", ctl.SearchPatients)
		search.GET("/doctors", ctl.SearchDoctors)
	}
}

func (ctl *SearchController) SearchPatients(c *gin.Context) {
	results, err := ctl.patients.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(results))
}

func (ctl *SearchController) SearchDoctors(c *gin.Context) {
	results, err := ctl.doctors.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(results))
}
