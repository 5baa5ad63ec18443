package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/torneokills/torneo/internal/api"
	"github.com/torneokills/torneo/internal/factory"
	"github.com/torneokills/torneo/internal/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the registration site, admin panel and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Server logs go to stdout; the other commands keep stdout for their output
			l, err := newLogger(appConfig.Log, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			logger = l
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	app, err := factory.New(appConfig, logger)
	if err != nil {
		return err
	}
	defer closeLogged(app, "storage")

	server := api.NewServer(newHandler(app), serverConfig(), logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			logger.Info("shutdown signal received")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}

// newHandler combines the API under /api/ with the pages
func newHandler(app *factory.App) http.Handler {
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:        app.Logger,
		Storage:       app.Storage,
		PayoutService: app.PayoutService,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:              app.Logger,
		Storage:             app.Storage,
		RegistrationService: app.RegistrationService,
		EnrollmentService:   app.EnrollmentService,
		PayoutService:       app.PayoutService,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)
	return mux
}

func serverConfig() api.ServerConfig {
	return api.ServerConfig{
		Host:            appConfig.Server.Host,
		Port:            appConfig.Server.Port,
		ReadTimeout:     appConfig.Server.ReadTimeout,
		WriteTimeout:    appConfig.Server.WriteTimeout,
		ShutdownTimeout: appConfig.Server.ShutdownTimeout,
	}
}
