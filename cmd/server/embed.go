//go:build embed
// +build embed

package main

import (
	"embed"
	"io"
	"io/fs"
	"log"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

//go:embed web
var webAssets embed.FS

// setupStaticFiles configures static file serving with the embedded frontend
func setupStaticFiles(router *gin.Engine) {
	log.Println("Using embedded frontend assets")

	webFS, err := fs.Sub(webAssets, "web")
	if err != nil {
		log.Fatalf("Failed to get web subdirectory: %v", err)
	}

	router.NoRoute(func(c *gin.Context) {
		urlPath := c.Request.URL.Path

		// API routes are handled elsewhere
		if len(urlPath) >= 4 && urlPath[:4] == "/api" {
			c.JSON(404, gin.H{"error": "API endpoint not found"})
			return
		}

		cleanPath := path.Clean(urlPath)
		if cleanPath == "/" {
			cleanPath = "/index.html"
		}
		cleanPath = cleanPath[1:]

		file, err := webFS.Open(cleanPath)
		if err == nil {
			defer file.Close()
			stat, err := file.Stat()
			if err == nil && !stat.IsDir() {
				content, err := io.ReadAll(file)
				if err == nil {
					contentType := "text/html; charset=utf-8"
					switch path.Ext(cleanPath) {
					case ".js":
						contentType = "application/javascript; charset=utf-8"
					case ".css":
						contentType = "text/css; charset=utf-8"
					case ".json":
						contentType = "application/json; charset=utf-8"
					case ".png":
						contentType = "image/png"
					case ".jpg", ".jpeg":
						contentType = "image/jpeg"
					case ".svg":
						contentType = "image/svg+xml"
					case ".ico":
						contentType = "image/x-icon"
					}
					c.Data(http.StatusOK, contentType, content)
					return
				}
			}
		}

		// Fall back to index.html
		indexFile, err := webFS.Open("index.html")
		if err != nil {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		defer indexFile.Close()

		content, err := io.ReadAll(indexFile)
		if err != nil {
			c.String(http.StatusInternalServerError, "Error reading index.html")
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})
}
