package routes

import (
	"enquete-portal-backend/internal/api/handlers"
	"enquete-portal-backend/internal/api/middleware"
	"enquete-portal-backend/internal/config"
	"enquete-portal-backend/internal/repository"
	"enquete-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()
	log := logrus.StandardLogger()

	// Initialize repositories
	caseRepo := repository.NewCaseRepository(db)
	investigatorRepo := repository.NewInvestigatorRepository(db)
	findingsRepo := repository.NewFindingsRepository(db)
	fileRepo := repository.NewImportFileRepository(db)

	// Initialize services
	vpnService := service.NewVPNService(cfg.VPNTemplateDir, cfg.VPNConfigDir, log)
	caseService := service.NewCaseService(caseRepo, investigatorRepo, findingsRepo, validator)
	investigatorService := service.NewInvestigatorService(investigatorRepo, vpnService, validator, log)
	findingsService := service.NewFindingsService(findingsRepo, caseRepo)
	parser := service.NewEOSParser(log)
	importService := service.NewImportService(fileRepo, caseRepo, findingsRepo, parser, cfg.UploadDir, log)
	statsService := service.NewStatsService(fileRepo, caseRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	caseHandler := handlers.NewCaseHandler(caseService)
	investigatorHandler := handlers.NewInvestigatorHandler(investigatorService)
	findingsHandler := handlers.NewFindingsHandler(findingsService)
	fileHandler := handlers.NewFileHandler(importService)
	statsHandler := handlers.NewStatsHandler(statsService)
	vpnHandler := handlers.NewVPNHandler(vpnService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// File ingest routes, kept at the root for compatibility with the
	// exchange tooling
	router.POST("/parse", fileHandler.ImportFile)
	router.POST("/replace-file", fileHandler.ReplaceFile)

	api := router.Group("/api")
	{
		// Cases
		api.GET("/donnees", caseHandler.GetAllCases)
		api.GET("/donnees/:id", caseHandler.GetCase)
		api.POST("/donnees", caseHandler.CreateCase)
		api.DELETE("/donnees/:id", caseHandler.DeleteCase)
		api.POST("/assign-enquete", caseHandler.AssignCase)

		// Findings
		api.GET("/donnees-enqueteur/:id", findingsHandler.GetFindings)
		api.POST("/donnees-enqueteur/:id", findingsHandler.UpdateFindings)

		// Investigators
		api.GET("/enqueteurs", investigatorHandler.GetAllInvestigators)
		api.GET("/enqueteurs/:id", investigatorHandler.GetInvestigator)
		api.POST("/enqueteurs", investigatorHandler.CreateInvestigator)
		api.DELETE("/enqueteurs/:id", investigatorHandler.DeleteInvestigator)

		// VPN delivery
		api.GET("/enqueteurs/:id/vpn-config", vpnHandler.GetVPNConfig)
		api.GET("/vpn-template", vpnHandler.GetTemplateStatus)
		api.POST("/vpn-template", vpnHandler.UploadTemplate)

		// Imported files and statistics
		api.DELETE("/fichiers/:id", fileHandler.DeleteFile)
		api.GET("/stats", statsHandler.GetStats)
	}

	return router
}
