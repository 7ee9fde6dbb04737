package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/gstoney/mcwire"
	"github.com/gstoney/mcwire/config"
	"github.com/gstoney/mcwire/packet"
)

func serve(ctx context.Context, cfgPath, envPath string) error {
	cfg, err := config.Load(cfgPath, envPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(log)
	log.Info("mcserver starting", "version", version, "protocol", packet.ProtocolVersion,
		"config", filepath.Clean(cfgPath))

	items, err := cfg.Items.Table()
	if err != nil {
		return fmt.Errorf("loading items: %w", err)
	}
	inventory, err := starterInventory(items, cfg.Server.StarterItems)
	if err != nil {
		return err
	}
	log.Info("items loaded", "count", items.Len(), "starter_slots", len(cfg.Server.StarterItems))

	reg, err := packet.NewProtocolRegistry()
	if err != nil {
		return fmt.Errorf("building packet registry: %w", err)
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())

	h := &handler{
		cfg:       cfg.Server,
		inventory: inventory,
		log:       log,
	}
	srv := &mcwire.Server{
		Handler:          h.serve,
		Dispatcher:       packet.NewDispatcher(reg, cfg.Codec.Limits()),
		Transport:        cfg.Transport.Transport(),
		HandshakeTimeout: cfg.Server.HandshakeTimeout,
		Logger:           log,
		Metrics:          mcwire.NewMetrics(promReg),
	}

	l, err := net.Listen("tcp", cfg.Server.Address)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.Server.Address, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Serve(gctx, l)
	})

	if cfg.Metrics.Address != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
		httpSrv := &http.Server{
			Addr:              cfg.Metrics.Address,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			log.Info("metrics listening", "address", cfg.Metrics.Address)
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("mcserver stopped")
	return nil
}
