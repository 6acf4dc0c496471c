package app

import (
	"go-hrms/internal/document"
	"go-hrms/internal/drivestore"
	"go-hrms/internal/employee"
	"go-hrms/internal/holiday"
	"go-hrms/internal/leave"
	"go-hrms/internal/notifier"
	"go-hrms/internal/sheetstore"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	sheetClient sheetstore.Values,
	driveClient drivestore.Store,
	rdb *redis.Client,
	mailer notifier.Notifier,
) error {
	logger := zap.L()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(sheetClient)
	holidayRepo := holiday.NewRepository(sheetClient)
	leaveRepo := leave.NewRepository(sheetClient)
	documentRepo := document.NewRepository(sheetClient)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, driveClient, rdb)
	holidayService := holiday.NewService(holidayRepo)
	leaveService := leave.NewService(leaveRepo, employeeRepo, mailer)
	documentService := document.NewService(documentRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	holidayHandler := holiday.NewHandler(holidayService)
	leaveHandler := leave.NewHandler(leaveService)
	documentHandler := document.NewHandler(documentService)

	// --- Routes Registration ---
	api := router.Group("")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
		holiday.RegisterRoutes(api, holidayHandler, logger)
		leave.RegisterRoutes(api, leaveHandler, logger)
		document.RegisterRoutes(api, documentHandler, logger)
	}

	return nil
}
