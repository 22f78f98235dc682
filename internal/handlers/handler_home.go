package handlers

import "github.com/gin-gonic/gin"

func registerHomeRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
}
