package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lge_services/internal/models"
)

// rolePolicy maps "METHOD /route/path" to the roles allowed to call it.
// Routes absent from the table only need to pass the group's token gate.
var rolePolicy = map[string][]string{
	"POST /admin/clusters/create":           {models.RoleSuperAdmin},
	"POST /admin/services/:id/update-price": {models.RoleSuperAdmin},
	"POST /admin/users/:id/update-role":     {models.RoleSuperAdmin},
	"PATCH /services/:id/price":             {models.RoleSuperAdmin},
}

// Authorize evaluates the role policy table for the matched route. It runs
// once at the gate so handlers never re-check roles themselves.
func Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, ok := rolePolicy[c.Request.Method+" "+c.FullPath()]
		if !ok {
			c.Next()
			return
		}

		role, _ := c.Get("role")
		for _, r := range allowed {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}
