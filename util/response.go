package util

import (
	coreutil "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"
)

func SuccessResponse(data interface{}) gin.H {
	return gin.H{
		"status": coreutil.STATUS_SUCCESS,
		"data":   data,
	}
}

// FailedResponse never exposes the text of an unclassified error.
func FailedResponse(err error) gin.H {
	return gin.H{
		"status": coreutil.STATUS_FAILED,
		"error":  PublicMessage(err),
	}
}
