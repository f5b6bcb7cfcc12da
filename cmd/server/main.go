package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/copipaste/agencia-SGE/internal/infrastructure/config"
	"github.com/copipaste/agencia-SGE/internal/infrastructure/oauth"
	"github.com/copipaste/agencia-SGE/internal/infrastructure/persistence"
	"github.com/copipaste/agencia-SGE/internal/interface/mailer"
	"github.com/copipaste/agencia-SGE/internal/interface/push"
	mongoRepo "github.com/copipaste/agencia-SGE/internal/interface/repository"
	"github.com/copipaste/agencia-SGE/internal/interface/rest"
	"github.com/copipaste/agencia-SGE/internal/usecase"
	"github.com/copipaste/agencia-SGE/pkg/logger"
	"github.com/copipaste/agencia-SGE/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Agencia SGE Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	// Set up metrics
	m := metrics.NewMetrics("agencia")

	// Set up repositories
	usuarioRepo := mongoRepo.NewMongoUsuarioRepository(db)
	clienteRepo := mongoRepo.NewMongoClienteRepository(db)
	agenteRepo := mongoRepo.NewMongoAgenteRepository(db)
	proveedorRepo := mongoRepo.NewMongoProveedorRepository(db)
	servicioRepo := mongoRepo.NewMongoServicioRepository(db)
	paqueteRepo := mongoRepo.NewMongoPaqueteRepository(db)
	ventaRepo := mongoRepo.NewMongoVentaRepository(db)
	detalleRepo := mongoRepo.NewMongoDetalleVentaRepository(db)
	alertaRepo := mongoRepo.NewMongoAlertaRepository(db)

	// External collaborators
	predictorRepo := mongoRepo.NewHTTPPredictorRepository(cfg.IAUrl, log)
	biRepo := mongoRepo.NewHTTPBiRepository(cfg.BiBaseURL, cfg.BiAuthToken, cfg.BiMaxRetries, cfg.BiRetryDelay, log)

	// Set up Google OAuth for Gmail and FCM
	googleOAuth := oauth.NewGoogleOAuth(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRefreshToken,
		log,
	)
	tokenSource := googleOAuth.GetTokenSource(ctx)

	mailerRepo, err := mailer.NewGmailMailer(ctx, tokenSource, cfg.MailFrom, log)
	if err != nil {
		log.Fatal("Failed to create Gmail mailer", "error", err)
	}
	pushRepo := push.NewFcmPushRepository(cfg.FcmProjectID, tokenSource, log)

	// Set up usecases
	calculator := usecase.NewFeatureCalculator(ventaRepo, paqueteRepo, clienteRepo, usuarioRepo, log)
	prediccionSvc := usecase.NewPrediccionService(ventaRepo, calculator, predictorRepo, log, m)
	recordatorioSvc := usecase.NewRecordatorioService(alertaRepo, ventaRepo, mailerRepo, log, m, cfg.RiskThreshold, cfg.ReminderHour)
	ventaSvc := usecase.NewVentaService(ventaRepo, detalleRepo, clienteRepo, agenteRepo, usuarioRepo, prediccionSvc, recordatorioSvc, pushRepo, log)
	authSvc := usecase.NewAuthService(usuarioRepo, cfg.JWTSecret, cfg.JWTExpiry, log)

	// Start the daily reminder scheduler
	go recordatorioSvc.StartScheduler(ctx)

	// Set up HTTP server
	router := rest.NewRouter(rest.Handlers{
		Auth:        rest.NewAuthHandler(authSvc),
		Cuentas:     rest.NewCuentaHandler(usuarioRepo, clienteRepo, agenteRepo),
		Catalogo:    rest.NewCatalogoHandler(proveedorRepo, servicioRepo, paqueteRepo),
		Ventas:      rest.NewVentaHandler(ventaSvc),
		IA:          rest.NewIAHandler(prediccionSvc, recordatorioSvc),
		Bi:          rest.NewBiHandler(biRepo),
		AuthService: authSvc,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("HTTP server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	// Wait for termination signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", "error", err)
	}

	log.Info("Service stopped")
}
