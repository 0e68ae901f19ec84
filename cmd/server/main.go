package main

import (
	"blockdrop/config"
	"blockdrop/proto"
	"blockdrop/server"
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
)

func main() {
	cfgPath := flag.String("config", "", "path to a JSON config file")
	addr := flag.String("addr", "", "gRPC listen address, overrides the config")
	httpAddr := flag.String("http", "", "watch feed listen address, overrides the config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("unable to load config: %v", err)
	}
	if *addr != "" {
		cfg.Address = *addr
	}
	if *httpAddr != "" {
		cfg.HTTPAddress = *httpAddr
	}
	level, err := cfg.Level()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	lis, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	defer lis.Close()

	engine := server.New(logger, cfg)
	s := grpc.NewServer()
	defer s.Stop()
	proto.RegisterEngineServer(s, engine)

	var hs *http.Server
	if cfg.HTTPAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("GET /watch", engine.WatchHandler())
		hs = &http.Server{Addr: cfg.HTTPAddress, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			logger.Info("serving watch feed", slog.String("address", cfg.HTTPAddress))
			if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("watch feed stopped", slog.String("error", err.Error()))
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if hs != nil {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			hs.Shutdown(sctx) //nolint: errcheck
		}
		s.GracefulStop()
	}()

	logger.Info("starting server", slog.String("address", cfg.Address))
	if err := s.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
