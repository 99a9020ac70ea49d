package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/outreach/internal/audit"
	"github.com/avolkov/outreach/internal/config"
	"github.com/avolkov/outreach/internal/database"
	"github.com/avolkov/outreach/internal/database/campaigns"
	"github.com/avolkov/outreach/internal/database/contacts"
	http_controllers "github.com/avolkov/outreach/internal/http"
	"github.com/avolkov/outreach/internal/importers"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Outreach v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	contactRepo := contacts.NewRepository(db.DB)
	campaignRepo := campaigns.NewRepository(db.DB)
	pipeline := importers.NewPipeline(contactRepo)

	var dumper *audit.Dumper
	if cfg.Audit.Enabled {
		dumper = audit.NewDumper(cfg.Audit.Dir)
	}
	auditService := audit.NewService(db.DB, dumper)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:      db,
		ContactStore:  contactRepo,
		CampaignStore: campaignRepo,
		Pipeline:      pipeline,
		Audit:         auditService,
		Version:       version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	})
}
