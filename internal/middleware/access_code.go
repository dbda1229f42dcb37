package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const AccessCodeHeader = "X-Access-Code"

// AccessCodeMiddleware requires the access code whose bcrypt hash is codeHash,
// taken from the X-Access-Code header or the access_code form field.
// An empty hash lets every request through. denied handles rejected requests;
// nil answers with a JSON 403.
func AccessCodeMiddleware(codeHash string, denied gin.HandlerFunc) gin.HandlerFunc {
	if denied == nil {
		denied = func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid access code"})
		}
	}
	return func(c *gin.Context) {
		if codeHash == "" {
			c.Next()
			return
		}

		code := strings.TrimSpace(c.GetHeader(AccessCodeHeader))
		if code == "" {
			code = strings.TrimSpace(c.PostForm("access_code"))
		}
		if code == "" || bcrypt.CompareHashAndPassword([]byte(codeHash), []byte(code)) != nil {
			denied(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
