package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/yfei-chen/circlefeed/utils"
)

// JWT validates the bearer token in the Authorization header. On
// success it strips the header and adds a "sub" field carrying the
// authenticated user's id, which is the only identity handlers trust.
// It returns error on token not provided or token is invalid.
func JWT(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimPrefix(header, "Bearer ")

		if raw == "" || raw == header {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": utils.ErrorTokenAuthFail,
				"msg":  "missing bearer token",
			})
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": utils.ErrorTokenAuthFail,
				"msg":  err.Error(),
			})
			c.Abort()
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": utils.ErrorTokenAuthFail,
				"msg":  "token has no subject",
			})
			c.Abort()
			return
		}

		// Successfully validated the jwt token, replace the header field
		// with the user's sub (id).
		c.Request.Header.Del("Authorization")
		c.Request.Header.Set("sub", sub)

		// before request
		c.Next()
	}
}
