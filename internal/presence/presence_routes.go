package presence

import (
	"github.com/Urbancode-IT/INOUT-sub000/internal/middleware"
	"github.com/Urbancode-IT/INOUT-sub000/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	presence := r.Group("/presence")
	presence.Use(middleware.AuthMiddleware())
	{
		presence.GET("/summary", middleware.RBACAuthorize(rbacService, "presence", "read"), h.GetSummary)
		presence.GET("/calendar", middleware.RBACAuthorize(rbacService, "presence", "read"), h.GetCalendar)
		presence.GET("/summary/:employee_id", middleware.RBACAuthorize(rbacService, "presence", "read_all"), h.GetSummary)
		presence.GET("/calendar/:employee_id", middleware.RBACAuthorize(rbacService, "presence", "read_all"), h.GetCalendar)
	}
}
