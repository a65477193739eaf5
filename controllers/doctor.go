package controllers

import (
	"net/http"

	"HospitalHub/models"
	"HospitalHub/services"
	"HospitalHub/util"

	"github.com/gin-gonic/gin"
)

type DoctorController struct {
	doctors *services.DoctorService
}

func Doctor(router gin.IRouter, doctors *services.DoctorService) {
	ctl := &DoctorController{doctors: doctors}
	doctor := router.Group("/doctors")
	{
		doctor.POST("/", ctl.CreateDoctor)
		doctor.GET("/", ctl.FetchAllDoctors)
		doctor.GET("/:id", ctl.FetchDoctor)
		doctor.PUT("/:id", ctl.UpdateDoctor)
		doctor.DELETE("/:id", ctl.DeleteDoctor)
	}
}

func (ctl *DoctorController) CreateDoctor(c *gin.Context) {
	var in models.DoctorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	doctor, err := ctl.doctors.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(doctor))
}

func (ctl *DoctorController) FetchAllDoctors(c *gin.Context) {
	doctors, err := ctl.doctors.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(doctors))
}

func (ctl *DoctorController) FetchDoctor(c *gin.Context) {
	doctor, err := ctl.doctors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(doctor))
}

func (ctl *DoctorController) UpdateDoctor(c *gin.Context) {
	var in models.DoctorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	doctor, err := ctl.doctors.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(doctor))
}

func (ctl *DoctorController) DeleteDoctor(c *gin.Context) {
	if err := ctl.doctors.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
