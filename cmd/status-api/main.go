package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ashelwen77/zksync/internal/metrics"
	"github.com/ashelwen77/zksync/internal/model"
	"github.com/ashelwen77/zksync/internal/status"
	"github.com/ashelwen77/zksync/internal/transport"
	"github.com/getsentry/sentry-go"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		log.Fatalf("failed to parse flags: %v", err)
	}

	if err := setupSentry(cfg); err != nil {
		log.Fatalf("failed to init sentry: %v", err)
	}
	defer sentry.Flush(2 * time.Second)

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("status api stopped", zap.Error(err))
		sentry.Flush(2 * time.Second)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	network := model.Network(cfg.Network)
	logger = logger.With(zap.String("network", cfg.Network))

	storage, closeStorage, err := openStorage(ctx, cfg, network)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStorage(context.Background()); err != nil {
			logger.Error("Failed to close storage", zap.Error(err))
		}
	}()

	healthServer := health.NewServer()
	reporter := transport.NewHealthReporter(healthServer, transport.StatusServiceName, transport.DefaultFailureThreshold, logger)

	cache := status.NewCache()
	updater, err := status.NewUpdater(cache, storage, metrics.NewStatusUpdater(network), logger,
		status.WithPeriod(cfg.RefreshPeriod),
		status.WithFetchTimeout(cfg.FetchTimeout),
		status.WithListener(reporter),
	)
	if err != nil {
		return fmt.Errorf("create status updater: %w", err)
	}

	panicNotify := make(chan error, 1)
	crashed := make(chan error, 1)
	handle := updater.Start(ctx, panicNotify)
	defer handle.Stop()
	go func() {
		select {
		case err := <-panicNotify:
			sentry.CaptureException(err)
			crashed <- err
			cancel()
		case <-ctx.Done():
		}
	}()

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server stopped", zap.Error(serveErr))
			cancel()
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	healthConn, err := grpc.NewClient(dialTarget(cfg.Addr), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial gRPC health: %w", err)
	}
	defer func() {
		_ = healthConn.Close()
	}()

	gw := gwruntime.NewServeMux(
		gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(healthConn)),
	)
	if err := transport.NewStatusHandler(cache, logger).Register(gw); err != nil {
		return fmt.Errorf("register status handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.RestAddr), zap.String("storage", cfg.Storage))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	select {
	case err := <-crashed:
		return err
	default:
		return nil
	}
}

// dialTarget turns a listen address such as ":8000" into a dialable one.
func dialTarget(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}
