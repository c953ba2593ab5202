package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every endpoint onto the router, with CORS, cookie
// sessions and a recovery boundary that turns panics into a JSON 500.
func SetupRoutes(router *gin.Engine, handler *Handler, sessionSecret string) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))

	store := cookie.NewStore([]byte(sessionSecret))
	router.Use(sessions.Sessions("manjai_session", store))

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		handler.logger.WithField("panic", recovered).Error("Recovered from handler panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "เกิดข้อผิดพลาดภายในระบบ",
		})
	}))

	api := router.Group("/api")
	{
		api.GET("/provinces", handler.GetProvinces)
		api.POST("/quick-estimate", handler.QuickEstimate)
		api.POST("/evaluate", handler.EvaluateProperty)
		api.GET("/check-ollama", handler.CheckOllama)
		api.POST("/download-pdf", handler.DownloadPDF)

		api.POST("/upload-price-data", handler.UploadPriceData)
		api.GET("/get-price-data", handler.GetPriceData)
		api.GET("/download-template", handler.DownloadTemplate)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", handler.Login)
			authGroup.POST("/logout", handler.Logout)
			authGroup.GET("/me", handler.CurrentUser)
		}

		admin := api.Group("/admin")
		{
			admin.GET("/users", handler.ListUsers)
			admin.POST("/users", handler.CreateUser)
			admin.PUT("/users/:id", handler.UpdateUser)
			admin.DELETE("/users/:id", handler.DeleteUser)
		}
	}
}
