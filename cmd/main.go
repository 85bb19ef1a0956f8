package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpcontext "github.com/dtroode/notes-server/internal/api/http/context"
	"github.com/dtroode/notes-server/internal/api/http/router"
	"github.com/dtroode/notes-server/internal/config"
	"github.com/dtroode/notes-server/internal/logger"
	"github.com/dtroode/notes-server/internal/model"
	"github.com/dtroode/notes-server/internal/password"
	"github.com/dtroode/notes-server/internal/repository/memory"
	"github.com/dtroode/notes-server/internal/repository/postgres"
	"github.com/dtroode/notes-server/internal/server"
	"github.com/dtroode/notes-server/internal/service"
	storage "github.com/dtroode/notes-server/internal/storage/minio"
	"github.com/dtroode/notes-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

type stores struct {
	users  model.UserStore
	notes  model.NoteStore
	pinger model.Pinger
	close  func() error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	st, err := openStores(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "driver", cfg.Database.Driver, "error", err)
	}
	defer st.close()

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	authService := service.NewAuth(st.users, password.NewBcrypt(cfg.Bcrypt.Cost), tokenManager, logger)
	noteService := service.NewNote(st.notes, logger)

	services := router.Services{
		Auth:   authService,
		Notes:  noteService,
		Tokens: authService,
	}
	checks := map[string]model.Pinger{"database": st.pinger}

	if cfg.Storage.Enabled {
		storageClient, err := storage.New(ctx, cfg.Storage)
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
		services.Export = service.NewExport(st.notes, storageClient, logger)
		checks["storage"] = storageClient
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler := router.New(services, httpcontext.NewManager(), checks, registry, logger).Register()
	httpServer := server.NewHTTPServer(handler, cfg.HTTP.Address, server.Timeouts{
		Read:  cfg.HTTP.ReadTimeout,
		Write: cfg.HTTP.WriteTimeout,
		Idle:  cfg.HTTP.IdleTimeout,
	})

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openStores(ctx context.Context, cfg config.Database) (stores, error) {
	if cfg.Driver == config.DriverMemory {
		users := memory.NewUserRepository()
		return stores{
			users:  users,
			notes:  memory.NewNoteRepository(),
			pinger: users,
			close:  func() error { return nil },
		}, nil
	}

	conn, err := postgres.NewConnection(ctx, cfg.DSN)
	if err != nil {
		return stores{}, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return stores{
		users:  postgres.NewUserRepository(conn),
		notes:  postgres.NewNoteRepository(conn),
		pinger: conn,
		close:  conn.Close,
	}, nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
