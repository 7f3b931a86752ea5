package container

import (
	"database/sql"

	"facility/internal/assets"
	"facility/internal/assignments"
	"facility/internal/config"
	"facility/internal/journal"
	"facility/internal/repository"
	"facility/internal/users"

	"go.uber.org/zap"
)

type Container struct {
	Repository   *repository.Repository
	AssetHandler *assets.AssetsHandler
	UserHandler  *users.UsersHandler
}

func NewAppContainer(db *sql.DB, cfg config.Config, logger *zap.Logger) *Container {
	repo := repository.NewRepository(db)
	journalRepo := journal.NewRepository(repo)
	assignmentRepo := assignments.NewRepository(repo)
	assetRepo := assets.NewRepository(repo)
	userRepo := users.NewRepository(repo)
	historyService := assets.NewHistoryService(assetRepo, journalRepo, assignmentRepo, cfg.HistoryScanLimit)
	assetHandler := assets.NewHandler(assetRepo, historyService, logger)
	userHandler := users.NewHandler(userRepo, logger)

	return &Container{
		Repository:   repo,
		AssetHandler: assetHandler,
		UserHandler:  userHandler,
	}
}
