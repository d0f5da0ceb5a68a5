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

	"github.com/gofiber/fiber/v2"

	"github.com/domainops/porkbun-adapter/internal/api"
	"github.com/domainops/porkbun-adapter/internal/config"
	intmcp "github.com/domainops/porkbun-adapter/internal/mcp"
	"github.com/domainops/porkbun-adapter/internal/metrics"
	"github.com/domainops/porkbun-adapter/internal/porkbun"
	intsecrets "github.com/domainops/porkbun-adapter/internal/secrets"
	"github.com/domainops/porkbun-adapter/pkg/logger"
	pkgsecrets "github.com/domainops/porkbun-adapter/pkg/secrets"
	"github.com/domainops/porkbun-adapter/pkg/utils"
)

const version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Load configuration ---
	cfg := config.Load()

	logOutput := "stdout"
	if cfg.MCPMode == "stdio" {
		// stdout carries the MCP protocol in stdio mode
		logOutput = "stderr"
	}
	logger.InitWithOutput(cfg.ServiceName, cfg.Env, cfg.LogLevel, logOutput)
	defer logger.Sync()
	logg := logger.S()

	logg.Info("starting [porkbun-adapter]...")
	logg.Infow("configuration loaded",
		"base_url", cfg.BaseURL,
		"timeout", cfg.Timeout,
		"api_key", utils.MaskSecret(cfg.APIKey),
		"mcp_transport", cfg.MCPMode)

	// --- AWS Secrets Manager provider (optional) ---
	var provider pkgsecrets.Provider
	if cfg.SecretName != "" {
		p, err := pkgsecrets.NewAWSProvider(ctx, cfg.AWSRegion)
		if err != nil {
			logg.Fatalw("failed to init AWS provider", "error", err)
		}
		provider = p
	}

	// --- Resolve registrar credentials ---
	creds, err := intsecrets.Load(ctx, logger.L(), cfg, provider)
	if err != nil {
		logg.Fatalw("failed to load credentials", "error", err)
	}

	// --- Registrar client (core adapter logic) ---
	client := porkbun.NewClient(logger.L(), cfg.BaseURL, creds, cfg.Timeout)

	// --- Metrics ---
	metrics.StartServer(cfg.MetricsAddr)

	// stdio mode owns the process: no REST listener, block until EOF or signal
	if cfg.MCPMode == "stdio" {
		logg.Info("serving MCP over stdio")
		if err := intmcp.RunStdio(ctx, client, version); err != nil && !errors.Is(err, context.Canceled) {
			logg.Fatalw("mcp.stdio_failed", "error", err)
		}
		return
	}

	// --- REST front-end ---
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api.RegisterRoutes(app, api.NewHandler(logger.L(), client, version))

	go func() {
		logg.Infof("HTTP API listening on :%d", cfg.Port)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			logg.Fatalw("fiber.listen_failed", "error", err)
		}
	}()

	// --- MCP streamable HTTP front-end ---
	var mcpSrv *http.Server
	if cfg.MCPMode == "http" {
		mux := http.NewServeMux()
		mux.Handle("/mcp", intmcp.HTTPHandler(client, version))
		mcpSrv = &http.Server{Addr: cfg.MCPAddr, Handler: mux}
		go func() {
			logg.Infof("MCP streamable HTTP listening on %s", cfg.MCPAddr)
			if err := mcpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logg.Fatalw("mcp.listen_failed", "error", err)
			}
		}()
	}

	<-ctx.Done()
	stop()
	logg.Info("shutting down [porkbun-adapter]...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	app.ShutdownWithContext(shutdownCtx) //nolint:errcheck
	if mcpSrv != nil {
		mcpSrv.Shutdown(shutdownCtx) //nolint:errcheck
	}
}
