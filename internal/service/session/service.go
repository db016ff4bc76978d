package session

import (
	"minigames_backend/internal/config"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	txManager   trm.Manager
	jwtCfg      config.JWTConfig
	gamesCfg    config.GamesConfig
}

func NewSessionService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	txManager trm.Manager,
	jwtCfg config.JWTConfig,
	gamesCfg config.GamesConfig,
) service.SessionService {
	return &serv{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		jwtCfg:      jwtCfg,
		gamesCfg:    gamesCfg,
	}
}
