package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/erp-crediario/backend/docs"
	"github.com/erp-crediario/backend/internal/adapter/api/controller"
	"github.com/erp-crediario/backend/internal/adapter/api/route"
	"github.com/erp-crediario/backend/internal/adapter/repository"
	"github.com/erp-crediario/backend/internal/domain/sale"
	"github.com/erp-crediario/backend/internal/infrastructure/database"
	"github.com/erp-crediario/backend/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router            *gin.Engine
	db                *pgxpool.Pool
	logger            logger.Logger
	saleRepository    sale.Repository
	clientController  *controller.ClientController
	saleController    *controller.SaleController
	productController *controller.ProductController
	riskController    *controller.RiskController
	sweepStop         context.CancelFunc
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	appLogger := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	clientRepo := repository.NewClientRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Criar controllers
	clientController := controller.NewClientController(clientRepo, appLogger)
	saleController := controller.NewSaleController(saleRepo, clientRepo, appLogger)
	productController := controller.NewProductController(productRepo, appLogger)
	riskController := controller.NewRiskController(saleRepo, productRepo, appLogger)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	return &App{
		router:            router,
		db:                db,
		logger:            appLogger,
		saleRepository:    saleRepo,
		clientController:  clientController,
		saleController:    saleController,
		productController: productController,
		riskController:    riskController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterClientRoutes(api, a.clientController)
	route.RegisterSaleRoutes(api, a.saleController)
	route.RegisterProductRoutes(api, a.productController)
	route.RegisterRiskRoutes(api, a.riskController)

	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// StartOverdueSweep agenda a marcação periódica de parcelas vencidas.
// As consultas de parcelas também marcam sob demanda; o ticker garante
// que o status converge mesmo sem tráfego.
func (a *App) StartOverdueSweep() {
	interval := time.Hour
	if v := os.Getenv("OVERDUE_SWEEP_INTERVAL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			interval = time.Duration(minutes) * time.Minute
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.sweepStop = cancel

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				marked, err := a.saleRepository.MarkOverdue(ctx, time.Now())
				if err != nil {
					a.logger.Error("erro ao marcar parcelas vencidas", "error", err)
					continue
				}
				if marked > 0 {
					a.logger.Info("parcelas marcadas como atrasadas", "count", marked)
				}
			}
		}
	}()
}

// Start inicia o servidor HTTP
func (a *App) Start() {
	a.SetupRoutes("/api/v1")
	a.StartOverdueSweep()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	if err := a.router.Run(":" + port); err != nil {
		log.Fatalf("Erro ao iniciar o servidor: %v", err)
	}
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.sweepStop != nil {
		a.sweepStop()
	}
	if a.db != nil {
		a.db.Close()
	}
}
