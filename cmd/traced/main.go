package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kimestelle/algorithm-visualizer/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	jsonLogs := flag.Bool("json-logs", false, "emit JSON log lines")
	flag.Parse()

	log := logrus.New()
	if *jsonLogs {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	srv := server.New(log)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Listen(*addr) }()
	log.WithField("addr", *addr).Info("trace server listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.WithError(err).Fatal("server stopped")
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown failed")
	}
}
