package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/axellelanca/pokedex/cmd"
	"github.com/axellelanca/pokedex/internal/api"
	"github.com/axellelanca/pokedex/internal/config"
	"github.com/axellelanca/pokedex/internal/models"
	"github.com/axellelanca/pokedex/internal/monitor"
	"github.com/axellelanca/pokedex/internal/repository"
	"github.com/axellelanca/pokedex/internal/services"
	"github.com/axellelanca/pokedex/internal/workers"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// RunServerCmd is the 'run-server' Cobra command, the entry point for the
// HTTP service and its background processes.
var RunServerCmd = &cobra.Command{
	Use:   "run-server",
	Short: "Starts the pokedex API server and its background processes.",
	Long: `This command initializes the database, wires the API routes,
starts the asynchronous audit workers and the image monitor,
then launches the HTTP server.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		db, err := gorm.Open(sqlite.Open(cfg.Database.Name), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to the database: %v", err)
		}

		if err := db.AutoMigrate(&models.Pokemon{}, &models.AuditEntry{}); err != nil {
			log.Fatalf("Failed to migrate the database: %v", err)
		}

		pokemonRepo := repository.NewPokemonRepository(db)
		auditRepo := repository.NewAuditRepository(db)
		log.Println("Repositories initialized.")

		pokemonService := services.NewPokemonService(pokemonRepo)
		log.Println("Business services initialized.")

		// Audit events flow through a buffered channel to a pool of workers
		// so mutations never wait on the trail being written.
		auditEvents := make(chan models.AuditEvent, cfg.Audit.BufferSize)
		workers.StartAuditWorkers(cfg.Audit.WorkerCount, auditEvents, auditRepo)
		log.Printf("Audit event channel initialized with a buffer of %d. %d audit worker(s) started.",
			cfg.Audit.BufferSize, cfg.Audit.WorkerCount)

		monitorInterval := time.Duration(cfg.Monitor.IntervalMinutes) * time.Minute
		imageMonitor := monitor.NewImageMonitor(pokemonRepo, monitorInterval)
		go imageMonitor.Start()
		log.Printf("Image monitor started with an interval of %v.", monitorInterval)

		router := gin.Default()
		accounts := gin.Accounts{cfg.Auth.Username: cfg.Auth.Password}
		api.SetupRoutes(router, pokemonService, accounts, auditEvents)
		log.Println("API routes configured.")

		serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
		srv := &http.Server{
			Addr:    serverAddr,
			Handler: router,
		}

		// Serve from a goroutine so the main flow can block on signals.
		go func() {
			log.Printf("Starting server on %s", serverAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Failed to start server: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		<-quit
		log.Println("Shutdown signal received. Stopping server...")

		stopServer(srv, auditEvents, 5*time.Second)
		time.Sleep(1 * time.Second)

		log.Println("Server stopped cleanly.")
	},
}

// stopServer shuts the HTTP server down and then hands the audit channel to
// the workers by closing it, so they drain the backlog and exit. When
// Shutdown times out a handler may still be about to enqueue, and a send on
// a closed channel panics, so in that case the channel stays open and the
// workers go down with the process instead.
func stopServer(srv *http.Server, auditEvents chan models.AuditEvent, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shut down: %v", err)
		return
	}

	close(auditEvents)
}

func init() {
	cmd.RootCmd.AddCommand(RunServerCmd)
}
