package routes

import (
	"log"
	"net/http"
	"strconv"

	_ "momo_gateway/docs"
	"momo_gateway/internal/adapter/http/handlers"
	"momo_gateway/internal/infrastructure/config"
	"momo_gateway/internal/infrastructure/logger"
	"momo_gateway/internal/infrastructure/metrics"
	"momo_gateway/internal/infrastructure/payments"
	"momo_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	sugar := logger.New(cfg.LogLevel)
	defer func() { _ = sugar.Sync() }()

	setMiddlewares(sugar)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg, sugar)

	sugar.Infow("[http] listening", "port", cfg.Port, "mode", cfg.Mode)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		sugar.Fatalw("Failed to startup the application", "err", err)
	}
}

func getRoutes(cfg config.Config, log *zap.SugaredLogger) {
	gateway, err := payments.NewGateway(cfg, log)
	if err != nil {
		log.Fatalw("[payment][gateway] not configured", "err", err)
	}
	gateway = metrics.NewInstrumentedGateway(gateway, metrics.NewMetrics(prometheus.DefaultRegisterer), cfg.Mode)

	paymentUseCase := usecase.NewPaymentUseCase(gateway, log)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, log)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares(log *zap.SugaredLogger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorw("Recovered from panic", "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
