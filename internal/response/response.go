// Package response implements the common JSON envelope returned by every
// endpoint: {status: "success"|"error", data?, message?}.
package response

import "github.com/gin-gonic/gin"

func OK(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func Message(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"status": "success", "message": msg})
}

func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"status": "error", "message": msg})
}

func AbortError(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, gin.H{"status": "error", "message": msg})
}
