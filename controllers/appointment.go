package controllers

import (
	"net/http"

	"HospitalHub/models"
	"HospitalHub/services"
	"HospitalHub/util"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	appointments *services.AppointmentService
}

func Appointment(router gin.IRouter, appointments *services.AppointmentService) {
	ctl := &AppointmentController{appointments: appointments}
	appointment := router.Group("/appointments")
	{
		appointment.POST("/", ctl.CreateAppointment)
		appointment.GET("/", ctl.FetchAllAppointments)
		appointment.GET("/:id", ctl.FetchAppointment)
		appointment.PUT("/:id", ctl.UpdateAppointment)
		appointment.DELETE("/:id", ctl.DeleteAppointment)
		appointment.GET("/patient/:patient_id", ctl.FetchPatientAppointments)
		appointment.GET("/doctor/:doctor_id", ctl.FetchDoctorAppointments)
	}
}

func (ctl *AppointmentController) CreateAppointment(c *gin.Context) {
	var in models.AppointmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	appointment, err := ctl.appointments.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(appointment))
}

func (ctl *AppointmentController) FetchAllAppointments(c *gin.Context) {
	appointments, err := ctl.appointments.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointments))
}

func (ctl *AppointmentController) FetchAppointment(c *gin.Context) {
	appointment, err := ctl.appointments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointment))
}

func (ctl *AppointmentController) UpdateAppointment(c *gin.Context) {
	var in models.AppointmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	appointment, err := ctl.appointments.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointment))
}

func (ctl *AppointmentController) DeleteAppointment(c *gin.Context) {
	if err := ctl.appointments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *AppointmentController) FetchPatientAppointments(c *gin.Context) {
	appointments, err := ctl.appointments.ListByPatient(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointments))
}

func (ctl *AppointmentController) FetchDoctorAppointments(c *gin.Context) {
	appointments, err := ctl.appointments.ListByDoctor(c.Request.Context(), c.Param("doctor_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointments))
}
