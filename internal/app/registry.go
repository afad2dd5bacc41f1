package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/Urbancode-IT/INOUT-sub000/internal/attendance"
	"github.com/Urbancode-IT/INOUT-sub000/internal/auth"
	"github.com/Urbancode-IT/INOUT-sub000/internal/employee"
	"github.com/Urbancode-IT/INOUT-sub000/internal/geofence"
	"github.com/Urbancode-IT/INOUT-sub000/internal/holiday"
	"github.com/Urbancode-IT/INOUT-sub000/internal/leave"
	"github.com/Urbancode-IT/INOUT-sub000/internal/messaging/kafka"
	"github.com/Urbancode-IT/INOUT-sub000/internal/payroll"
	"github.com/Urbancode-IT/INOUT-sub000/internal/photostore"
	"github.com/Urbancode-IT/INOUT-sub000/internal/presence"
	"github.com/Urbancode-IT/INOUT-sub000/internal/rbac"
	"github.com/Urbancode-IT/INOUT-sub000/internal/rbac/infra"
	"github.com/Urbancode-IT/INOUT-sub000/internal/schedule"
	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Static geofence config ---
	sites, err := geofence.LoadSites(envOr("OFFICE_SITES_PATH", filepath.Join("config", "office_sites.json")))
	if err != nil {
		return err
	}

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("internal", "rbac", "infra", "model.conf"),
		filepath.Join("internal", "rbac", "infra", "policy.csv"),
	)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Stores ---
	payslipStore, err := payroll.NewDiskPayslipStore(envOr("PAYSLIP_DIR", filepath.Join("storage", "payslips")))
	if err != nil {
		return err
	}
	photoStore, err := photostore.NewDiskStore(envOr("PHOTO_DIR", filepath.Join("storage", "photos")))
	if err != nil {
		return err
	}

	// --- Services ---
	presenceCache := presence.NewCache(rdb, presence.DefaultCacheTTL, nil)
	scheduleService := schedule.NewService(scheduleRepo)
	holidayService := holiday.NewService(holidayRepo)
	leaveService := leave.NewService(db, leaveRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	presenceService := presence.NewService(
		attendanceRepo,
		scheduleService,
		holidayService,
		leaveService,
		employeeService,
		presenceCache,
		presence.DefaultConfig(),
	)
	attendanceService := attendance.NewService(db, attendanceRepo, sites, outboxRepo, presenceCache)
	authService := auth.NewService(authRepo, employeeRepo)
	payrollService := payroll.NewService(db, payrollRepo, presenceService, employeeService, outboxRepo, payslipStore)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	holidayHandler := holiday.NewHandler(holidayService)
	leaveHandler := leave.NewHandler(leaveService)
	payrollHandler := payroll.NewHandler(payrollService)
	photoHandler := photostore.NewHandler(photoStore)
	presenceHandler := presence.NewHandler(presenceService)
	scheduleHandler := schedule.NewHandler(scheduleService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		presence.RegisterRoutes(api, presenceHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		schedule.RegisterRoutes(api, scheduleHandler, rbacService, logger)
		holiday.RegisterRoutes(api, holidayHandler, rbacService, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb, logger)
		photostore.RegisterRoutes(api, photoHandler, rbacService, logger)
	}

	return nil
}
