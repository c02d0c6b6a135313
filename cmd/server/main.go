// Command server exposes the task-statement parser as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/parse?statement=<text>
//	POST /api/parse/batch          body: {"statements":["..."]}
//	GET  /api/graphdl?statement=<text>
//	GET  /api/expand?phrase=<text>
//	GET  /api/titles?title=<text>
//	GET  /api/unknown-words
//	GET  /healthz
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/graphdl/taskparse"
)

var logger *zap.Logger

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	lexiconDir := flag.String("lexicon", "", "lexicon overlay directory (overrides config)")
	watch := flag.Bool("watch", false, "reload the lexicon when overlay files change")
	debug := flag.Bool("debug", false, "debug-level logging")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		c, err := LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = c
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *lexiconDir != "" {
		cfg.LexiconDir = *lexiconDir
	}
	if *watch {
		cfg.Watch = true
	}
	if *debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = zcfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	parser := taskparse.NewDefault()
	if cfg.LexiconDir != "" {
		parser, err = taskparse.NewFromDir(cfg.LexiconDir)
		if err != nil {
			logger.Fatal("load lexicon", zap.String("dir", cfg.LexiconDir), zap.Error(err))
		}
	}
	logger.Info("lexicon loaded", zap.Any("sizes", parser.Lexicon().Size()))

	svc := newService(parser, cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse/batch", svc.handleParseBatch())
	mux.HandleFunc("/api/parse", svc.handleParse())
	mux.HandleFunc("/api/graphdl", svc.handleGraphDL())
	mux.HandleFunc("/api/expand", svc.handleExpand())
	mux.HandleFunc("/api/titles", svc.handleTitles())
	mux.HandleFunc("/api/unknown-words", svc.handleUnknownWords())
	mux.HandleFunc("/healthz", svc.handleHealthz())

	handler := svc.withRequestID(cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(mux))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Watch && cfg.LexiconDir != "" {
		lw, err := newLexiconWatcher(cfg.LexiconDir, svc)
		if err != nil {
			logger.Fatal("create lexicon watcher", zap.Error(err))
		}
		if err := lw.Start(ctx); err != nil {
			logger.Fatal("start lexicon watcher", zap.Error(err))
		}
		defer lw.Stop()
	}

	srv := &http.Server{Addr: cfg.Addr, Handler: handler}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("listening", zap.String("addr", cfg.Addr))

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
		logger.Info("shut down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}
}
