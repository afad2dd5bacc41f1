package attendance

import (
	"github.com/Urbancode-IT/INOUT-sub000/internal/middleware"
	"github.com/Urbancode-IT/INOUT-sub000/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("/check-in", middleware.RBACAuthorize(rbacService, "attendance", "create"), h.CheckIn)
		attendances.POST("/check-out", middleware.RBACAuthorize(rbacService, "attendance", "create"), h.CheckOut)
		attendances.GET("/history", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetHistory)
		attendances.GET("/history/:employee_id", middleware.RBACAuthorize(rbacService, "attendance", "read_all"), h.GetHistory)
		attendances.GET("/status", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetStatus)
	}
}
