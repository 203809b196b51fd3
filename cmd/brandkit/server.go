// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xilkadim/brandkit/internal/config"
	"github.com/xilkadim/brandkit/internal/server"
	"github.com/xilkadim/brandkit/internal/tls"
	"go.uber.org/zap"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start the Brand Kit dashboard and JSON API",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		logger, err := config.NewLogger()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()

		if err := runServer(logger); err != nil {
			logger.Error("server exited", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}

// runServer serves until SIGINT/SIGTERM, then drains connections within server.shutdown_timeout
func runServer(logger *zap.Logger) error {
	if config.GetString("logging.level") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	tlsCfg, err := tls.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load TLS config: %w", err)
	}
	serverTLS, err := tlsCfg.TLSConfig()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%s", config.GetString("server.http_port"))

	// Create listener first to catch binding errors immediately
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind HTTP server to %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           server.New(logger),
		TLSConfig:         serverTLS,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			zap.String("addr", listener.Addr().String()),
			zap.Bool("tls", serverTLS != nil))
		if serverTLS != nil {
			serveErr <- srv.ServeTLS(listener, "", "")
			return
		}
		serveErr <- srv.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := config.GetDuration("server.shutdown_timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger.Info("shutting down", zap.Duration("timeout", timeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
