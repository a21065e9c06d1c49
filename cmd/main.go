package main

import (
	"strconv"
	"time"

	"maritime-service/internal/handler"
	"maritime-service/internal/middleware"
	"maritime-service/internal/service"
	"maritime-service/pkg/config"
	"maritime-service/pkg/database"
	"maritime-service/pkg/jwtutil"
	"maritime-service/pkg/logger"
	"maritime-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting maritime service...", zap.String("environment", cfg.Server.Env))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Initialize database and run migrations
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed",
		zap.String("db_host", cfg.DB.Host),
		zap.String("db_name", cfg.DB.DBName))

	// Token utility shared by the login handler and the auth middleware
	jwt := jwtutil.New(&cfg.JWT)

	// Workflows
	ports := service.NewPortService(db, log)
	terminals := service.NewTerminalService(db, log)
	accounts := service.NewAccountService(db, log)

	// Handlers
	portHandler := handler.NewPortHandler(ports)
	terminalHandler := handler.NewTerminalHandler(terminals)
	accountHandler := handler.NewUserAccountHandler(accounts, jwt)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = handler.ErrorHandler

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestID)

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			duration := time.Since(start).Seconds()
			status := c.Response().Status

			log := logger.FromContext(c)
			log.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
				zap.Float64("duration_s", duration),
				zap.String("ip", c.RealIP()),
			)

			prometheus.HttpRequestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(status),
			).Inc()

			prometheus.HttpRequestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(status),
			).Observe(duration)

			return nil
		}
	})

	// Public routes
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	account := e.Group("/useraccount")
	account.POST("/registeruser", accountHandler.RegisterUser)
	account.POST("/gettoken", accountHandler.GetToken)

	// Routes that require a valid bearer token
	portGroup := e.Group("/ports", middleware.JWTAuth(jwt))
	portGroup.GET("", portHandler.GetPorts)
	portGroup.GET("/:id", portHandler.GetPort)
	portGroup.POST("", portHandler.CreatePort)
	portGroup.PUT("", portHandler.UpdatePort)
	portGroup.DELETE("/:id", portHandler.DeletePort)

	terminalGroup := e.Group("/terminals", middleware.JWTAuth(jwt))
	terminalGroup.GET("", terminalHandler.GetTerminals)
	terminalGroup.GET("/:id", terminalHandler.GetTerminal)
	terminalGroup.POST("", terminalHandler.CreateTerminal)
	terminalGroup.PUT("", terminalHandler.UpdateTerminal)
	terminalGroup.DELETE("/:id", terminalHandler.DeleteTerminal)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
