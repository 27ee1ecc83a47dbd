// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"github.com/google/wire"
	"github.com/lingolog/lingolog/internal/adapter/connectrpc"
	"github.com/lingolog/lingolog/internal/adapter/grpc"
	"github.com/lingolog/lingolog/internal/adapter/repository"
	"github.com/lingolog/lingolog/internal/infrastructure/config"
	"github.com/lingolog/lingolog/internal/infrastructure/database"
	"github.com/lingolog/lingolog/internal/infrastructure/server"
	"github.com/lingolog/lingolog/internal/usecase"
)

// Injectors from wire.go:

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	configConfig, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger, err := server.NewLogger(configConfig)
	if err != nil {
		return nil, nil, err
	}
	client, cleanup, err := database.NewEntClient(configConfig)
	if err != nil {
		return nil, nil, err
	}
	logRepository := repository.NewImmersionLogRepository(client)
	registrationRepository := repository.NewRegistrationRepository(client)
	catalogRepository := repository.NewCatalogRepository(client)
	logUsecase := usecase.NewLogUsecase(logRepository, registrationRepository, catalogRepository)
	logServiceServer := connectrpc.NewLogServiceServer(logUsecase)
	contestRepository := repository.NewContestRepository(client)
	contestUsecase := usecase.NewContestUsecase(contestRepository, registrationRepository, logRepository)
	contestServiceServer := connectrpc.NewContestServiceServer(contestUsecase)
	leaderboardRepository := repository.NewLeaderboardRepository(client)
	leaderboardUsecase := usecase.NewLeaderboardUsecase(contestRepository, leaderboardRepository)
	leaderboardServiceServer := grpc.NewLeaderboardServiceServer(leaderboardUsecase)
	serverServer := server.NewServer(configConfig, logger, logServiceServer, contestServiceServer, leaderboardServiceServer)
	container := &Container{
		Logger: logger,
		Server: serverServer,
	}
	return container, func() {
		cleanup()
	}, nil
}

// wire.go:

var configSet = wire.NewSet(config.Load)

var databaseSet = wire.NewSet(database.NewEntClient)

var repositorySet = wire.NewSet(repository.NewImmersionLogRepository, repository.NewContestRepository, repository.NewRegistrationRepository, repository.NewCatalogRepository, repository.NewLeaderboardRepository)

var usecaseSet = wire.NewSet(usecase.NewLogUsecase, usecase.NewContestUsecase, usecase.NewLeaderboardUsecase)

var serviceSet = wire.NewSet(connectrpc.NewLogServiceServer, connectrpc.NewContestServiceServer, grpc.NewLeaderboardServiceServer)

var serverSet = wire.NewSet(server.NewLogger, server.NewServer)
