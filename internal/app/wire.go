//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	adapterconnect "github.com/lingolog/lingolog/internal/adapter/connectrpc"
	adaptergrpc "github.com/lingolog/lingolog/internal/adapter/grpc"
	adapterrepo "github.com/lingolog/lingolog/internal/adapter/repository"
	"github.com/lingolog/lingolog/internal/infrastructure/config"
	"github.com/lingolog/lingolog/internal/infrastructure/database"
	"github.com/lingolog/lingolog/internal/infrastructure/server"
	"github.com/lingolog/lingolog/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
)

var databaseSet = wire.NewSet(
	database.NewEntClient,
)

var repositorySet = wire.NewSet(
	adapterrepo.NewImmersionLogRepository,
	adapterrepo.NewContestRepository,
	adapterrepo.NewRegistrationRepository,
	adapterrepo.NewCatalogRepository,
	adapterrepo.NewLeaderboardRepository,
)

var usecaseSet = wire.NewSet(
	usecase.NewLogUsecase,
	usecase.NewContestUsecase,
	usecase.NewLeaderboardUsecase,
)

var serviceSet = wire.NewSet(
	adapterconnect.NewLogServiceServer,
	adapterconnect.NewContestServiceServer,
	adaptergrpc.NewLeaderboardServiceServer,
)

var serverSet = wire.NewSet(
	server.NewLogger,
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		serviceSet,
		serverSet,
		wire.Struct(new(Container), "Logger", "Server"),
	)
	return nil, nil, nil
}
