package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dd0wney/cluso-rbd/pkg/api"
	"github.com/dd0wney/cluso-rbd/pkg/logging"
	"github.com/dd0wney/cluso-rbd/pkg/metrics"
)

func main() {
	port := flag.Int("port", 0, "HTTP server port (default 8080, or set PORT)")
	configPath := flag.String("config", "", "Optional YAML config file")
	flag.Parse()

	config := api.DefaultConfig()
	if *configPath != "" {
		loaded, err := api.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config error: %v\n", err)
			os.Exit(1)
		}
		config = loaded
	}

	// Flag and PORT env override the config file
	if *port != 0 {
		config.Port = *port
	} else if envPort := os.Getenv("PORT"); envPort != "" {
		if p, err := strconv.Atoi(envPort); err == nil {
			config.Port = p
		}
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(config.LogLevel))
	registry := metrics.NewRegistry()
	server := api.NewServer(logger, registry)

	handler := http.MaxBytesHandler(server.Handler(), config.MaxBodyBytes)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("reliability server starting", logging.Int("port", config.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", logging.Error(err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", logging.Error(err))
	}
}
