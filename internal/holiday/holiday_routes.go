package holiday

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
	holidays := r.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware())
	holidays.Use(middleware.ContextLogger(logger))
	{
		holidays.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "holiday", "read"),
			handler.List,
		)

		holidays.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "holiday", "write"),
			handler.Create,
		)

		holidays.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "holiday", "write"),
			handler.Delete,
		)
	}
}
