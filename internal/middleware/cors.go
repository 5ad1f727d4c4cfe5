package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS restricts cross-origin access to the configured frontend origins.
// The request ID header is both accepted and exposed so browser clients can
// propagate and read it.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Accept", "Authorization", RequestIDHeader)
	cfg.ExposeHeaders = []string{RequestIDHeader}
	cfg.AllowCredentials = true

	return cors.New(cfg)
}
