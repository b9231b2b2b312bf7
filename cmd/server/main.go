package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zooyer/cad2pdf"
	"github.com/zooyer/cad2pdf/config"
	"github.com/zooyer/cad2pdf/logging"
	"github.com/zooyer/cad2pdf/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := logging.NewText(os.Stdout, cfg.Level())
	slog.SetDefault(logger)
	logging.SetLogger(logger)

	opt, err := cad2pdf.OptionsFrom(cfg)
	if err != nil {
		slog.Error("load options", "error", err)
		os.Exit(1)
	}

	handler := server.NewHandler(opt, cfg.MaxUploadBytes())

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 优雅退出
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("shutdown", "error", err)
		}
	}()

	slog.Info("server starting", "addr", addr, "page", fmt.Sprintf("%gx%g", opt.PageWidth, opt.PageHeight))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
