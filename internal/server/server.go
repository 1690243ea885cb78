package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/karthikbhat/invoice-hub-service/internal/config"
	"github.com/karthikbhat/invoice-hub-service/internal/handler"
	"github.com/karthikbhat/invoice-hub-service/internal/middleware"
)

// Server represents the HTTP server for the invoicing service.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
}

// NewServer creates and configures a new server instance with all routes
// registered.
func NewServer(
	cfg *config.Config,
	clientHandler *handler.ClientHandler,
	itemHandler *handler.ItemHandler,
	invoiceHandler *handler.InvoiceHandler,
) *Server {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(middleware.LoggerConfig{
		Format: cfg.LogFormat,
	}))

	server := &Server{
		router: router,
		config: cfg,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	server.setupRoutes(clientHandler, itemHandler, invoiceHandler)

	return server
}

// Router returns the gin router instance.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes configures all application routes.
func (s *Server) setupRoutes(
	clientHandler *handler.ClientHandler,
	itemHandler *handler.ItemHandler,
	invoiceHandler *handler.InvoiceHandler,
) {
	// Health check endpoint
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// API documentation endpoints
	// Access the Swagger UI at http://localhost:8080/api-docs/index.html
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	s.router.GET("/api-docs/*any", swaggerHandler)

	s.router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api-docs/index.html")
	})

	// Static frontend, served when the assets directory is present
	if _, err := os.Stat(s.config.StaticDir); err == nil {
		s.router.StaticFile("/", filepath.Join(s.config.StaticDir, "index.html"))
		s.router.Static("/static", s.config.StaticDir)
	}

	api := s.router.Group("/api")
	clientHandler.RegisterRoutes(api)
	itemHandler.RegisterRoutes(api)
	invoiceHandler.RegisterRoutes(api)
}

// Start begins listening for requests and handles graceful shutdown.
func (s *Server) Start() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server listening on port %d", s.config.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exited gracefully")
	return nil
}
