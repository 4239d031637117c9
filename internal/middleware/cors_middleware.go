package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"educonnect-backend/internal/config"
)

// CORSMiddleware allows the browser clients listed in CLIENT_URLS to call the
// API with credentials.
func CORSMiddleware(appConfig *config.Config) gin.HandlerFunc {
	origins := appConfig.AllowedOrigins()
	if len(origins) == 0 {
		// A wildcard policy with credentials is never acceptable.
		panic("CLIENT_URLS for CORS is not configured")
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Idempotency-Key"},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
