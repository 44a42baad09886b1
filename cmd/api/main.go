package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/salomao-adv/crm-backend/internal/config"
	"github.com/salomao-adv/crm-backend/internal/handlers"
	"github.com/salomao-adv/crm-backend/internal/logging"
	"github.com/salomao-adv/crm-backend/internal/middleware"
	"github.com/salomao-adv/crm-backend/internal/observability"
	"github.com/salomao-adv/crm-backend/internal/services"

	_ "github.com/salomao-adv/crm-backend/docs"
)

// @title           CRM Backend
// @version         1.0
// @description     API do CRM do escritório: cadastro de clientes e magistrados, fila de registros incompletos com dispensa de pendências, relatórios para impressão e exportação, presença da portaria e quadro de tarefas.

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name clients
// @tag.description Cadastro de clientes

// @tag.name pendencies
// @tag.description Fila de registros incompletos

// @tag.name confirmations
// @tag.description Confirmação em duas etapas de ações destrutivas

// @tag.name magistrates
// @tag.description Área restrita de magistrados

// @tag.name presence
// @tag.description Presença da portaria

// @tag.name tasks
// @tag.description Quadro de tarefas

// @tag.name health
// @tag.description Verificação de saúde

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize database connections
	config.InitMongoDB()
	config.InitRedis()

	// Initialize services
	services.InitConfirmationService()
	services.InitClientServices()
	services.InitPendencyServices()
	services.InitMagistrateService()
	services.InitPresenceService()
	services.InitTaskService()

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	clientRecords := handlers.NewRecordHandler(services.ClientServiceInstance)
	clientPendencies := handlers.NewPendencyHandler(services.PendencyServiceInstance, services.ClientServiceInstance)
	magistrateRecords := handlers.NewRecordHandler(services.MagistrateRecordServiceInstance)
	magistratePendencies := handlers.NewPendencyHandler(services.MagistratePendencyServiceInstance, services.MagistrateRecordServiceInstance)

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		authenticated := v1.Group("")
		authenticated.Use(middleware.AuthMiddleware(), middleware.AuditMiddleware())
		{
			authenticated.GET("/clients", clientRecords.List)
			authenticated.POST("/clients", clientRecords.Create)
			authenticated.GET("/clients/:id", clientRecords.Get)
			authenticated.PUT("/clients/:id", clientRecords.Update)
			authenticated.POST("/clients/:id/delete", clientRecords.RequestDelete)

			authenticated.GET("/pendencies", clientPendencies.List)
			authenticated.POST("/pendencies/:id/dismiss", clientPendencies.RequestDismiss)
			authenticated.POST("/pendencies/:id/discard", clientPendencies.RequestDiscard)
			authenticated.GET("/pendencies/export", clientPendencies.Export)
			authenticated.GET("/pendencies/print", clientPendencies.Print)

			authenticated.POST("/confirmations/:token", handlers.ConfirmAction)
			authenticated.DELETE("/confirmations/:token", handlers.AbortAction)

			authenticated.GET("/magistrates/access", handlers.CheckMagistrateAccess)
			authenticated.POST("/magistrates/unlock", handlers.UnlockMagistrateArea)
			authenticated.POST("/magistrates/lock", handlers.LockMagistrateArea)

			// Magistrate data lives behind the PIN-unlocked secure area
			secure := authenticated.Group("/magistrates")
			secure.Use(middleware.RequireSecureArea())
			{
				secure.GET("/clients", magistrateRecords.List)
				secure.POST("/clients", magistrateRecords.Create)
				secure.GET("/clients/:id", magistrateRecords.Get)
				secure.PUT("/clients/:id", magistrateRecords.Update)
				secure.POST("/clients/:id/delete", magistrateRecords.RequestDelete)

				secure.GET("/pendencies", magistratePendencies.List)
				secure.POST("/pendencies/:id/dismiss", magistratePendencies.RequestDismiss)
				secure.POST("/pendencies/:id/discard", magistratePendencies.RequestDiscard)
				secure.GET("/pendencies/export", magistratePendencies.Export)
				secure.GET("/pendencies/print", magistratePendencies.Print)
			}

			authenticated.POST("/presence/import", handlers.ImportPresence)
			authenticated.GET("/presence", handlers.ListPresence)
			authenticated.POST("/presence/clear", middleware.RequireAdmin(), handlers.RequestClearPresence)

			authenticated.GET("/tasks", handlers.ListTasks)
			authenticated.POST("/tasks", handlers.CreateTask)
			authenticated.PUT("/tasks/:id", handlers.UpdateTask)
			authenticated.POST("/tasks/:id/move", handlers.MoveTask)
			authenticated.POST("/tasks/:id/delete", handlers.RequestDeleteTask)
			authenticated.GET("/board", handlers.GetBoard)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
