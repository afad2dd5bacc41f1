package schedule

import (
	"github.com/Urbancode-IT/INOUT-sub000/internal/middleware"
	"github.com/Urbancode-IT/INOUT-sub000/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	schedules := r.Group("/schedules")
	schedules.Use(middleware.AuthMiddleware())
	schedules.Use(middleware.ContextLogger(logger))
	{
		schedules.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "schedule", "read"),
			handler.GetMine,
		)

		schedules.GET("/default",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "schedule", "read"),
			handler.GetDefault,
		)

		schedules.PUT("/default",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "schedule", "write"),
			handler.PutDefault,
		)

		schedules.GET("/:employee_id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "schedule", "write"),
			handler.GetForEmployee,
		)

		schedules.PUT("/:employee_id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "schedule", "write"),
			handler.PutForEmployee,
		)
	}
}
