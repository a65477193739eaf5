package controllers

import (
	"net/http"

	"HospitalHub/services"
	"HospitalHub/util"

	"github.com/gin-gonic/gin"
)

func Dashboard(router gin.IRouter, summary *services.SummaryService) {
	router.GET("/dashboard/stats", func(c *gin.Context) {
		stats, err := summary.DashboardStats(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(stats))
	})
}
