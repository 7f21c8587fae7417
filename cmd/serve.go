package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wpbridge/wpbridge/authbridge"
	"github.com/wpbridge/wpbridge/session"
)

var listenAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the auth bridge HTTP server",
	Long: `Run the login/session bridge. It authenticates users through the
WordPress login form, mints local session cookies, and exposes login, logout
and current-user endpoints for the host site.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (overrides auth.listen_addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	store := session.NewStore(session.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	defer store.Close()

	bridge, err := authbridge.NewBridge(wpClient, store, authbridge.CookieConfig{
		Name:     cfg.Auth.CookieName,
		Path:     cfg.Auth.CookiePath,
		SameSite: cfg.Auth.SameSiteMode(),
		Secure:   cfg.Auth.CookieSecure,
		TTL:      cfg.Auth.SessionTTL,
	}, logger)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	bridge.Routes(mux)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	addr := cfg.Auth.ListenAddr
	if listenAddr != "" {
		addr = listenAddr
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("Auth bridge listening")
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return err
		}
	}

	return nil
}
