package server

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"connectrpc.com/connect"
	connectcors "connectrpc.com/cors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	adapterconnect "github.com/lingolog/lingolog/internal/adapter/connectrpc"
	adaptergrpc "github.com/lingolog/lingolog/internal/adapter/grpc"
	"github.com/lingolog/lingolog/internal/infrastructure/config"
	lingologv1 "github.com/lingolog/lingolog/pkg/api/lingolog/v1"
	"github.com/lingolog/lingolog/pkg/api/lingolog/v1/lingologv1connect"
)

// Server bundles the three listeners: Connect for the interactive API,
// gRPC for the leaderboard service and an HTTP gateway in front of it.
type Server struct {
	config        *config.Config
	grpcServer    *grpc.Server
	gatewayServer *http.Server
	connectServer *http.Server
	logger        *logrus.Logger
}

// NewServer creates a new server instance
func NewServer(
	cfg *config.Config,
	logger *logrus.Logger,
	logSvc *adapterconnect.LogServiceServer,
	contestSvc *adapterconnect.ContestServiceServer,
	leaderboardSvc *adaptergrpc.LeaderboardServiceServer,
) *Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(logging.UnaryServerInterceptor(InterceptorLogger())),
	)
	lingologv1.RegisterLeaderboardServiceServer(grpcServer, leaderboardSvc)

	gatewayMux := runtime.NewServeMux()
	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	endpoint := fmt.Sprintf("localhost:%d", cfg.Server.GRPCPort)
	if err := lingologv1.RegisterLeaderboardServiceHandlerFromEndpoint(context.Background(), gatewayMux, endpoint, dialOpts); err != nil {
		logger.Errorf("failed to register leaderboard gateway handler: %v", err)
	}

	interceptors := connect.WithInterceptors(Logger())
	connectMux := http.NewServeMux()
	connectMux.Handle(lingologv1connect.NewLogServiceHandler(logSvc, interceptors))
	connectMux.Handle(lingologv1connect.NewContestServiceHandler(contestSvc, interceptors))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: connectcors.AllowedMethods(),
		AllowedHeaders: connectcors.AllowedHeaders(),
		ExposedHeaders: connectcors.ExposedHeaders(),
	})

	return &Server{
		config:     cfg,
		grpcServer: grpcServer,
		gatewayServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler: gatewayMux,
		},
		connectServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.ConnectPort),
			Handler: h2c.NewHandler(corsMiddleware.Handler(connectMux), &http2.Server{}),
		},
		logger: logger,
	}
}

// StartGRPC starts the gRPC server
func (s *Server) StartGRPC() error {
	addr := fmt.Sprintf(":%d", s.config.Server.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.logger.Infof("gRPC server starting on %s", addr)

	if err := s.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve gRPC: %w", err)
	}

	return nil
}

// StartHTTP starts the HTTP gateway server
func (s *Server) StartHTTP() error {
	s.logger.Infof("HTTP gateway starting on %s", s.gatewayServer.Addr)

	if err := s.gatewayServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve HTTP gateway: %w", err)
	}

	return nil
}

// StartConnect starts the Connect server
func (s *Server) StartConnect() error {
	s.logger.Infof("Connect server starting on %s", s.connectServer.Addr)

	if err := s.connectServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve Connect: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down all listeners.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if err := s.connectServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Failed to shutdown Connect server: %v", err)
	}
	if err := s.gatewayServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Failed to shutdown HTTP gateway: %v", err)
	}
	s.grpcServer.GracefulStop()

	s.logger.Info("Server shutdown complete")
	return nil
}
