package middlewares

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Saaaaaad3/Plattera/entity"
	"github.com/Saaaaaad3/Plattera/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and, when roles are given,
// requires one of them. Unrecognized role strings in the token
// normalize to RoleNone: such users pass tokenless-role checks but
// never a role-guarded group.
func AuthMiddleware(secret string, requiredRoles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		role := entity.NormalizeRole(claims.Role)
		userID, _ := strconv.ParseUint(claims.Subject, 10, 64)

		c.Set("userId", uint(userID))
		c.Set("role", role)
		c.Set("mobileNumber", claims.MobileNumber)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
