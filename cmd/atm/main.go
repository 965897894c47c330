package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/SscSPs/atm_simulator/internal/console"
	portssvc "github.com/SscSPs/atm_simulator/internal/core/ports/services"
	"github.com/SscSPs/atm_simulator/internal/core/services"
	"github.com/SscSPs/atm_simulator/internal/handlers"
	"github.com/SscSPs/atm_simulator/internal/middleware"
	"github.com/SscSPs/atm_simulator/internal/platform/config"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/ssh/terminal"
)

// @title ATM Simulator API
// @version 1.0
// @description Single-account ATM: check balance, deposit and withdraw.

// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	mode, err := selectMode(os.Args[1:], cfg.Mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "usage: atm [console|serve]")
		os.Exit(2)
	}

	logOut, closeLog, err := openLogOutput(mode, cfg.LogFile, terminal.IsTerminal(int(os.Stdin.Fd())))
	if err != nil {
		slog.Error("Failed to open log output", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeLog()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case config.ModeServe:
		err = serve(ctx, cfg, logger)
	default:
		err = runConsole(ctx, cfg, logger)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("ATM stopped with error", slog.String("error", err.Error()))
		if mode == config.ModeConsole {
			// The terminal is restored by now and logs may be discarded.
			fmt.Fprintln(os.Stderr, "atm:", err)
		}
		closeLog()
		os.Exit(1)
	}
}

// openLogOutput picks where JSON logs go. A configured file always wins. The server
// logs to stdout. The console keeps stdout for the session: logs go to stderr for
// piped input, and nowhere on a TTY, where they would interleave with the raw-mode screen.
func openLogOutput(mode config.Mode, logFile string, stdinIsTTY bool) (io.Writer, func(), error) {
	noop := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open log file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
	switch {
	case mode == config.ModeServe:
		return os.Stdout, noop, nil
	case stdinIsTTY:
		return io.Discard, noop, nil
	default:
		return os.Stderr, noop, nil
	}
}

// consoleNotifier renders notifications on the session. They are also logged when
// logs go to a file, which never shares the screen.
func consoleNotifier(w io.Writer, cfg *config.Config, logger *slog.Logger) portssvc.Notifier {
	screen := console.NewNotifier(w, cfg.Currency())
	if cfg.LogFile == "" {
		return screen
	}
	return portssvc.MultiNotifier{screen, services.NewLogNotifier(logger)}
}

// selectMode picks the presentation from the first argument, falling back to the configured mode.
func selectMode(args []string, fallback config.Mode) (config.Mode, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	switch mode := config.Mode(strings.ToLower(args[0])); mode {
	case config.ModeConsole, config.ModeServe:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown mode %q", args[0])
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	container, err := services.NewServiceContainer(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
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

	logger.Info("Shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

func runConsole(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	var lio console.LineIO
	fd := int(os.Stdin.Fd())
	if terminal.IsTerminal(fd) {
		oldState, err := terminal.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer func() {
			if err := terminal.Restore(fd, oldState); err != nil {
				logger.Warn("Failed to restore terminal", slog.String("error", err.Error()))
			}
		}()
		lio = terminal.NewTerminal(stdio{}, "")
	} else {
		lio = console.NewScannerIO(os.Stdin, os.Stdout)
	}

	container, err := services.NewServiceContainer(cfg, logger, services.WithNotifier(consoleNotifier(lio, cfg, logger)))
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	return console.NewSession(container.ATM, lio, cfg.Currency(), logger).Run(ctx)
}

// stdio joins stdin and stdout for the terminal.
type stdio struct{}

func (stdio) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdio) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
