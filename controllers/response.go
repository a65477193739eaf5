package controllers

import (
	"net/http"

	"HospitalHub/util"

	"github.com/gin-gonic/gin"
)

/*
* Write the failure envelope with the status for the error kind
* Server faults are attached to the context so the request logger records them
 */
func fail(c *gin.Context, err error) {
	status := util.StatusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, util.FailedResponse(err))
}

func badRequest(c *gin.Context, err error) {
	fail(c, util.InvalidArgument("%s", err.Error()))
}
