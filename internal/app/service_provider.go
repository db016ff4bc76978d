package app

import (
	"context"

	blackjackAPI "minigames_backend/internal/api/blackjack"
	crashAPI "minigames_backend/internal/api/crash"
	diceAPI "minigames_backend/internal/api/dice"
	minesAPI "minigames_backend/internal/api/mines"
	sessionAPI "minigames_backend/internal/api/session"
	"minigames_backend/internal/config"
	"minigames_backend/internal/config/env"
	"minigames_backend/internal/middleware"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/repository/game_state_repo"
	"minigames_backend/internal/repository/history_repo"
	"minigames_backend/internal/repository/session_repo"
	"minigames_backend/internal/repository/user_repo"
	"minigames_backend/internal/rng"
	"minigames_backend/internal/service"
	"minigames_backend/internal/service/blackjack"
	"minigames_backend/internal/service/crash"
	"minigames_backend/internal/service/dice"
	"minigames_backend/internal/service/mines"
	"minigames_backend/internal/service/session"
	"minigames_backend/internal/service/wallet"
	"minigames_backend/internal/ws"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisConfig config.RedisConfig
	redisClient *redis.Client

	// Common bits
	jwtCfg   config.JWTConfig
	gamesCfg config.GamesConfig
	rnd      rng.Source
	hub      *ws.Hub

	// Repositories
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	stateRepo   repository.GameStateRepository
	historyRepo repository.HistoryRepository

	// Wallet and session bits
	walletServ  service.WalletService
	sessionServ service.SessionService
	sessionHand *sessionAPI.Handler

	// Game bits
	diceServ      service.DiceService
	diceHand      *diceAPI.Handler
	minesServ     service.MinesService
	minesHand     *minesAPI.Handler
	crashServ     service.CrashService
	crashHand     *crashAPI.Handler
	blackjackServ service.BlackjackService
	blackjackHand *blackjackAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		rdb := redis.NewClient(&redis.Options{
			Addr:     sp.RedisConfig().Address(),
			Password: sp.RedisConfig().Password(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) GamesCfg() config.GamesConfig {
	if sp.gamesCfg == nil {
		cfg, err := env.NewGamesConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesCfg = cfg
	}
	return sp.gamesCfg
}

func (sp *ServiceProvider) RNG() rng.Source {
	if sp.rnd == nil {
		sp.rnd = rng.New()
	}
	return sp.rnd
}

func (sp *ServiceProvider) Hub() *ws.Hub {
	if sp.hub == nil {
		sp.hub = ws.NewHub()
	}
	return sp.hub
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) SessionRepo(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.DBClient(ctx))
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) GameStateRepo() repository.GameStateRepository {
	if sp.stateRepo == nil {
		sp.stateRepo = game_state_repo.NewGameStateRepository()
	}
	return sp.stateRepo
}

func (sp *ServiceProvider) HistoryRepo(ctx context.Context) repository.HistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = history_repo.NewHistoryRepository(sp.RedisClient(ctx))
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) WalletService(ctx context.Context) service.WalletService {
	if sp.walletServ == nil {
		sp.walletServ = wallet.NewWalletService(sp.UserRepo(ctx))
	}
	return sp.walletServ
}

func (sp *ServiceProvider) SessionService(ctx context.Context) service.SessionService {
	if sp.sessionServ == nil {
		sp.sessionServ = session.NewSessionService(
			sp.UserRepo(ctx),
			sp.SessionRepo(ctx),
			sp.TXManager(ctx),
			sp.JWTCfg(),
			sp.GamesCfg(),
		)
	}
	return sp.sessionServ
}

func (sp *ServiceProvider) SessionHandler(ctx context.Context) *sessionAPI.Handler {
	if sp.sessionHand == nil {
		sp.sessionHand = sessionAPI.NewHandler(sessionAPI.HandlerDeps{
			Serv: sp.SessionService(ctx),
		})
	}
	return sp.sessionHand
}

func (sp *ServiceProvider) DiceService(ctx context.Context) service.DiceService {
	if sp.diceServ == nil {
		sp.diceServ = dice.NewDiceService(
			sp.WalletService(ctx),
			sp.GameStateRepo(),
			sp.TXManager(ctx),
			sp.RNG(),
			sp.GamesCfg(),
		)
	}
	return sp.diceServ
}

func (sp *ServiceProvider) DiceHandler(ctx context.Context) *diceAPI.Handler {
	if sp.diceHand == nil {
		sp.diceHand = diceAPI.NewHandler(diceAPI.HandlerDeps{Serv: sp.DiceService(ctx)})
	}
	return sp.diceHand
}

func (sp *ServiceProvider) MinesService(ctx context.Context) service.MinesService {
	if sp.minesServ == nil {
		sp.minesServ = mines.NewMinesService(
			sp.WalletService(ctx),
			sp.GameStateRepo(),
			sp.TXManager(ctx),
			sp.RNG(),
			sp.GamesCfg(),
		)
	}
	return sp.minesServ
}

func (sp *ServiceProvider) MinesHandler(ctx context.Context) *minesAPI.Handler {
	if sp.minesHand == nil {
		sp.minesHand = minesAPI.NewHandler(minesAPI.HandlerDeps{Serv: sp.MinesService(ctx)})
	}
	return sp.minesHand
}

func (sp *ServiceProvider) CrashService(ctx context.Context) service.CrashService {
	if sp.crashServ == nil {
		sp.crashServ = crash.NewCrashService(
			sp.WalletService(ctx),
			sp.GameStateRepo(),
			sp.HistoryRepo(ctx),
			sp.TXManager(ctx),
			sp.RNG(),
			sp.GamesCfg(),
			sp.Hub(),
		)
	}
	return sp.crashServ
}

func (sp *ServiceProvider) CrashHandler(ctx context.Context) *crashAPI.Handler {
	if sp.crashHand == nil {
		sp.crashHand = crashAPI.NewHandler(crashAPI.HandlerDeps{
			Serv: sp.CrashService(ctx),
			Hub:  sp.Hub(),
		})
	}
	return sp.crashHand
}

func (sp *ServiceProvider) BlackjackService(ctx context.Context) service.BlackjackService {
	if sp.blackjackServ == nil {
		sp.blackjackServ = blackjack.NewBlackjackService(
			sp.WalletService(ctx),
			sp.GameStateRepo(),
			sp.TXManager(ctx),
			sp.RNG(),
			sp.GamesCfg(),
		)
	}
	return sp.blackjackServ
}

func (sp *ServiceProvider) BlackjackHandler(ctx context.Context) *blackjackAPI.Handler {
	if sp.blackjackHand == nil {
		sp.blackjackHand = blackjackAPI.NewHandler(blackjackAPI.HandlerDeps{Serv: sp.BlackjackService(ctx)})
	}
	return sp.blackjackHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		auth := middleware.Auth(sp.JWTCfg().AccessTokenSecretKey())

		// Session endpoints
		sessionHandler := sp.SessionHandler(ctx)
		r.Route("/session", func(rr chi.Router) {
			rr.Post("/", sessionHandler.Create)
			rr.Delete("/", sessionHandler.Logout)
			rr.With(auth).Get("/balance", sessionHandler.Balance)
		})

		// Dice endpoints
		diceHandler := sp.DiceHandler(ctx)
		r.Route("/dice", func(rr chi.Router) {
			rr.Use(auth)
			rr.Post("/place", diceHandler.Place)
			rr.Post("/reset", diceHandler.Reset)
			rr.Get("/state", diceHandler.State)
		})

		// Mines endpoints
		minesHandler := sp.MinesHandler(ctx)
		r.Route("/mines", func(rr chi.Router) {
			rr.Use(auth)
			rr.Post("/start", minesHandler.Start)
			rr.Post("/reveal", minesHandler.Reveal)
			rr.Post("/cashout", minesHandler.CashOut)
			rr.Post("/reset", minesHandler.Reset)
			rr.Get("/state", minesHandler.State)
		})

		// Crash endpoints
		crashHandler := sp.CrashHandler(ctx)
		r.Route("/crash", func(rr chi.Router) {
			rr.Use(auth)
			rr.Post("/place", crashHandler.Place)
			rr.Post("/cashout", crashHandler.CashOut)
			rr.Get("/state", crashHandler.State)
			rr.Get("/history", crashHandler.History)
			rr.Get("/feed", crashHandler.Feed)
		})

		// Blackjack endpoints
		blackjackHandler := sp.BlackjackHandler(ctx)
		r.Route("/blackjack", func(rr chi.Router) {
			rr.Use(auth)
			rr.Post("/place", blackjackHandler.Place)
			rr.Post("/hit", blackjackHandler.Hit)
			rr.Post("/stand", blackjackHandler.Stand)
			rr.Post("/reset", blackjackHandler.Reset)
			rr.Get("/state", blackjackHandler.State)
		})

		sp.router = r
	}

	return sp.router
}
