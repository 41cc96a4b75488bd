package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/admin"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/dashboard"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/observability"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/server"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/simulator"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the hub over HTTP and websockets",
	Long: `Start the HTTP API. Endpoints include wellness scoring, the resource
directory, dashboard panels, hotline numbers, the conversation simulator
with a websocket stream at /ws/simulator, and the admin portal.

The server shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, 127.0.0.1:8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := observability.Logger()

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	tr, err := dashboard.ParseTimeRange(cfg.Dashboard.DefaultRange)
	if err != nil {
		return fmt.Errorf("dashboard.default_range: %w", err)
	}

	limiter := admin.NewLimiterStore(cfg.Admin.LoginPerMinute, cfg.Admin.LoginBurst, time.Minute)
	defer limiter.Stop()

	auth, err := newAuthenticator(cfg, limiter)
	if err != nil {
		return err
	}

	secret := cfg.Admin.TokenSecret
	if secret == "" {
		secret = uuid.NewString() + uuid.NewString()
		log.Info("admin.token_secret not set, generated one for this process")
	}
	tokens, err := admin.NewTokenIssuer(secret, cfg.Admin.TokenTTL)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	dir, closeDir := openDirectory(ctx, cfg)
	defer closeDir()

	srv, err := server.New(server.Options{
		Version:   appVersion,
		Directory: dir,
		Simulator: simulator.Options{
			Interval:     cfg.Simulator.Interval,
			HistoryLimit: cfg.Simulator.HistoryLimit,
			Seed:         cfg.Simulator.Seed,
		},
		Auth:         auth,
		Tokens:       tokens,
		DefaultRange: tr,
		CallDuration: cfg.Hotline.CallDuration,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "mindhub serving on http://%s (Ctrl+C to stop)\n", addr)
	return srv.Listen(ctx, addr, cfg.Server.ShutdownTimeout)
}
