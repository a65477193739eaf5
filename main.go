package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"HospitalHub/ai"
	"HospitalHub/auth"
	"HospitalHub/cache"
	"HospitalHub/config"
	"HospitalHub/jobs"
	"HospitalHub/migrations"
	"HospitalHub/routes"
	"HospitalHub/services"
	"HospitalHub/store"
	memstore "HospitalHub/store/memory"
	mongostore "HospitalHub/store/mongo"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	startServer = serve
	runMigrate  = migrate
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var memory bool
	root := &cobra.Command{
		Use:          "hospitalhub",
		Short:        "Hospital management REST API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(memory)
		},
	}
	root.Flags().BoolVar(&memory, "memory", false, "use the in-process store instead of MongoDB")
	root.AddCommand(serveCmd(), migrateCmd())
	return root
}

func serveCmd() *cobra.Command {
	var memory bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(memory)
		},
	}
	cmd.Flags().BoolVar(&memory, "memory", false, "use the in-process store instead of MongoDB")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the MongoDB indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			setupLogger(cfg)
			return runMigrate(cmd.Context(), cfg)
		},
	}
}

func run(memory bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogger(cfg)
	return startServer(cfg, memory)
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.IsDev() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		return
	}
	gin.SetMode(gin.ReleaseMode)
}

func migrate(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return err
	}
	defer db.Client().Disconnect(context.Background())

	n, err := migrations.Run(ctx, db)
	if err != nil {
		return err
	}
	fmt.Printf("Applied %d migration(s) successfully.\n", n)
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, memory bool) (*store.Store, error) {
	if memory {
		log.Warn().Msg("using the in-memory store, data is lost on exit")
		return memstore.New(), nil
	}
	db, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, err
	}
	if _, err := migrations.Run(ctx, db); err != nil {
		_ = db.Client().Disconnect(ctx)
		return nil, err
	}
	return mongostore.NewStore(db), nil
}

/*
* Open the store, the cache and the auth service once for the whole process
* Build the router and start the daily jobs
* Serve until SIGINT or SIGTERM, then drain and close everything
 */
func serve(cfg *config.Config, memory bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	st, err := openStore(startCtx, cfg, memory)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("Error closing store")
		}
	}()

	var c cache.Cache = cache.Noop{}
	if cfg.RedisAddr != "" {
		client, err := cache.Dial(startCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer client.Close()
		c = cache.NewRedis(client, cfg.CacheTTL)
		log.Info().Str("addr", cfg.RedisAddr).Msg("patient cache enabled")
	}

	authSvc, err := auth.NewService(st.Staff, cfg.SecretKey, cfg.Algorithm, cfg.TokenTTL())
	if err != nil {
		return err
	}

	model, err := ai.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, cfg.AITimeout)
	if err != nil {
		return err
	}

	router := routes.New(st, routes.Options{
		Cache:        c,
		Model:        model,
		Auth:         authSvc,
		AuthRequired: cfg.AuthRequired,
		CORSOrigins:  cfg.CORSOrigins,
		Logger:       log.Logger,
	})

	if cfg.JobsEnabled {
		scheduler, err := jobs.StartDailyScheduler(services.NewSummaryService(st, nil))
		if err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HospitalHub API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}
