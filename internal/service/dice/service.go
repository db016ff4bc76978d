package dice

import (
	"minigames_backend/internal/config"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/rng"
	"minigames_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	wallet    service.WalletService
	stateRepo repository.GameStateRepository
	txManager trm.Manager
	rnd       rng.Source
	gamesCfg  config.GamesConfig
}

func NewDiceService(
	wallet service.WalletService,
	stateRepo repository.GameStateRepository,
	txManager trm.Manager,
	rnd rng.Source,
	gamesCfg config.GamesConfig,
) service.DiceService {
	return &serv{
		wallet:    wallet,
		stateRepo: stateRepo,
		txManager: txManager,
		rnd:       rnd,
		gamesCfg:  gamesCfg,
	}
}
