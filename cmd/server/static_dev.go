//go:build !embed
// +build !embed

package main

import (
	"log"

	"github.com/gin-gonic/gin"
)

// setupStaticFiles configures static file serving for development (no embedding)
func setupStaticFiles(router *gin.Engine) {
	log.Println("Using local filesystem for frontend assets (development mode)")

	router.Static("/static", "./cmd/server/web/static")
	router.StaticFile("/", "./cmd/server/web/index.html")
	router.StaticFile("/favicon.ico", "./cmd/server/web/static/favicon.ico")

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{"error": "API endpoint not found"})
			return
		}
		c.Redirect(302, "/")
	})
}
