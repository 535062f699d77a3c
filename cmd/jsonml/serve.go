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

	"github.com/aretw0/jsonml"
	httpAdapter "github.com/aretw0/jsonml/pkg/adapters/http"
	"github.com/aretw0/jsonml/pkg/adapters/memory"
	"github.com/aretw0/jsonml/pkg/adapters/redis"
	"github.com/aretw0/jsonml/pkg/observability"
	"github.com/aretw0/jsonml/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP render server",
	Long: `Starts the render engine as an HTTP server exposing POST /render,
GET /tokens/{name}, /tables (kept in Redis with --redis, in memory otherwise),
GET /health and Prometheus metrics on GET /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		logger := newLogger(cmd)

		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics(reg)
		hooks := observability.Chain(metrics.Hooks(), observability.LogHooks(logger))

		engine, _, err := newEngine(cmd, jsonml.WithLifecycleHooks(hooks))
		if err != nil {
			fmt.Printf("Error initializing jsonml: %v\n", err)
			os.Exit(1)
		}

		var tables ports.TableStore = memory.NewStore()
		if redisAddr, _ := cmd.Flags().GetString("redis"); redisAddr != "" {
			tables = redis.New(redisAddr)
		}

		handler := httpAdapter.NewHandler(engine,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithTableStore(tables),
			httpAdapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		)

		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting jsonml server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		select {
		case err := <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				fmt.Printf("Server error: %v\n", err)
				os.Exit(1)
			}

		case <-ctx.Done():
			fmt.Println("\nShutdown signal received, shutting down server...")

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("jsonml server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
