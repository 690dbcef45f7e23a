package middleware

import "github.com/gin-gonic/gin"

// Principal is the authenticated caller.
type Principal struct {
	UserID          string
	Role            string
	CompanyID       string
	PropertyGroupID string
}

func setPrincipal(c *gin.Context, p Principal) {
	c.Set("user_id", p.UserID)
	c.Set("role", p.Role)
	c.Set("company_id", p.CompanyID)
	c.Set("property_group_id", p.PropertyGroupID)
}

// CurrentUser reads the principal set by AuthMiddleware.
func CurrentUser(c *gin.Context) Principal {
	return Principal{
		UserID:          c.GetString("user_id"),
		Role:            c.GetString("role"),
		CompanyID:       c.GetString("company_id"),
		PropertyGroupID: c.GetString("property_group_id"),
	}
}
