package auth

import (
	"net/http"
	"strings"

	"HospitalHub/models"
	"HospitalHub/util"

	"github.com/gin-gonic/gin"
)

const staffKey = "staff"

/*
* Read the bearer token from the Authorization header
* Verify it and store the staff member on the context
* Abort with 401 otherwise
 */
func RequireAuth(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			unauthorized(c, util.Unauthorized("%s", util.MISSING_BEARER))
			return
		}
		user, err := svc.Verify(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			unauthorized(c, err)
			return
		}
		c.Set(staffKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(util.StatusFor(err), util.FailedResponse(err))
	if util.StatusFor(err) == http.StatusInternalServerError {
		_ = c.Error(err)
	}
}

// CurrentStaff returns the user stored by RequireAuth.
func CurrentStaff(c *gin.Context) (*models.Staff, bool) {
	v, ok := c.Get(staffKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.Staff)
	return user, ok
}
