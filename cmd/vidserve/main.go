package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vidserve/vidserve/internal/api"
	"github.com/vidserve/vidserve/internal/catalog"
	"github.com/vidserve/vidserve/internal/config"
	"github.com/vidserve/vidserve/internal/db"
	"github.com/vidserve/vidserve/internal/library"
	"github.com/vidserve/vidserve/internal/version"
)

func main() {
	// .env is optional; container deployments set real env vars.
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "/data/config.json", "path to config file (json)")
	flag.Parse()

	if err := config.EnsureConfigFile(cfgPath); err != nil {
		log.Fatalf("config bootstrap: %v", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validate: %v", err)
	}
	setupLog(cfg.Log.Level)

	log.Infof("vidserve %s (%s) starting", version.Version, version.Commit)

	d, err := db.Open(cfg.Paths.DBPath)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer d.Close()
	store := catalog.NewStore(d)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// One scan at boot; the catalog is read-only while serving.
	if run, err := library.NewScanner(cfg, store).Scan(ctx); err != nil {
		log.Warnf("library: initial scan failed, serving empty catalog err=%v", err)
	} else {
		log.Infof("library: %d videos ready", run.VideosFound)
	}

	srv, err := api.New(cfg, store)
	if err != nil {
		log.Fatalf("api init: %v", err)
	}

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		// No WriteTimeout: a range stream can outlive any fixed limit.
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("vidserve listening on %s", cfg.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return httpSrv.Shutdown(sctx)
	})
	if err := g.Wait(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func setupLog(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
