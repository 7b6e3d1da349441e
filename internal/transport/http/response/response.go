package response

import "github.com/gin-gonic/gin"

// Failures carry a bare {message} body; success payloads are written
// directly by the handlers.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"message": message})
}

func Message(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"message": message})
}
