package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key under which the authenticated user's
// ID is stored by AuthRequired.
const ContextUserID = "userID"

// AuthRequired returns a Gin middleware function that validates bearer
// tokens and restricts access to authenticated users only.
//
// The token is the second whitespace-separated field of the Authorization
// header; a missing or malformed header counts as "no token" and yields
// 401. A present token that fails verification yields 400 with the
// verification error detail.
func AuthRequired(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract the bearer token from the Authorization header
		fields := strings.Fields(c.GetHeader("Authorization"))
		if len(fields) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "access denied"})
			return
		}
		tokenStr := fields[1]

		// 2. Verify the signature and extract the user ID
		userID, err := verifier.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"msg":   "invalid token",
				"error": err.Error(),
			})
			return
		}

		// 3. Attach the authenticated identity and pass control on
		c.Set(ContextUserID, userID)
		c.Next()
	}
}
