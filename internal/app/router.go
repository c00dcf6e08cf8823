package app

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"oaflow.io/oaflow/internal/api/handlers"
	"oaflow.io/oaflow/internal/api/middleware"
	"oaflow.io/oaflow/internal/config"
	"oaflow.io/oaflow/internal/pkg/logger"
	"oaflow.io/oaflow/internal/pkg/metrics"
)

// devOrigins is the allowlist used when no origins are configured.
var devOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
}

func newRouter(cfg *config.Config, server *handlers.Server, signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(buildCORSConfig(cfg)))

	// Public surface.
	router.POST("/api/login", server.Login)
	router.GET("/api/healthz", server.Healthz)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	atomicLevel := logger.HTTPHandler()
	router.GET("/log/level", gin.WrapH(atomicLevel))
	router.PUT("/log/level", gin.WrapH(atomicLevel))

	api := router.Group("/api", middleware.JWTAuth(signingKey))
	{
		api.GET("/me", server.Me)
		api.GET("/me/delegation", server.GetDelegation)
		api.PUT("/me/delegation", server.PutDelegation)

		api.GET("/inbox", server.Inbox)

		api.POST("/requests", server.CreateRequest)
		api.GET("/requests", server.ListRequests)
		api.GET("/requests/:id", server.GetRequest)
		api.POST("/requests/:id/approve", server.ApproveRequest)
		api.POST("/requests/:id/reject", server.RejectRequest)
		api.POST("/requests/:id/resubmit", server.Resubmit)
		api.POST("/requests/:id/withdraw", server.Withdraw)
		api.POST("/requests/:id/void", server.Void)
		api.POST("/requests/:id/watchers", server.AddWatchers)
		api.POST("/requests/:id/attachments", server.UploadAttachment)
		api.GET("/attachments/:id/download", server.DownloadAttachment)

		api.POST("/tasks/:id/approve", server.ApproveTask)
		api.POST("/tasks/:id/reject", server.RejectTask)
		api.POST("/tasks/:id/return", server.ReturnTask)
		api.POST("/tasks/:id/transfer", server.TransferTask)
		api.POST("/tasks/:id/addsign", server.AddSignTask)

		api.GET("/workflows", server.ListWorkflows)

		api.GET("/notifications", server.ListNotifications)
		api.GET("/notifications/unread_count", server.UnreadNotifications)
		api.POST("/notifications/:id/read", server.MarkNotificationRead)

		api.GET("/org/tree", server.OrgTree)

		admin := api.Group("", middleware.RequireAdmin())
		{
			admin.GET("/users", server.ListUsers)
			admin.POST("/users/:id", server.UpdateUser)

			admin.GET("/admin/workflows", server.AdminListWorkflows)
			admin.GET("/admin/workflows/:key", server.AdminGetWorkflow)
			admin.POST("/admin/workflows", server.AdminUpsertWorkflow)
			admin.DELETE("/admin/workflows/:key", server.AdminDeleteWorkflow)

			admin.GET("/admin/departments", server.ListDepartments)
			admin.POST("/admin/departments", server.CreateDepartment)
		}
	}

	return router
}

// buildCORSConfig translates server config into a CORS policy. "*" in the
// allowlist only takes effect with the explicit unsafe flag, and reflecting
// all origins never pairs with credentials.
func buildCORSConfig(cfg *config.Config) cors.Config {
	out := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: cfg.Server.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}

	if cfg.Server.UnsafeAllowAllOrigins && slices.Contains(cfg.Server.AllowedOrigins, "*") {
		out.AllowAllOrigins = true
		out.AllowCredentials = false
		return out
	}

	origins := make([]string, 0, len(cfg.Server.AllowedOrigins))
	for _, origin := range cfg.Server.AllowedOrigins {
		if origin == "*" {
			continue
		}
		origins = append(origins, origin)
	}
	if len(origins) == 0 {
		origins = slices.Clone(devOrigins)
	}
	out.AllowOrigins = origins
	return out
}
