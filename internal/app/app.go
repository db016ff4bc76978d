package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"minigames_backend/internal/config"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := s.ServiceProvider.Router(ctx)

	s.runCrashTicker(ctx)

	log.Printf("starting server at %s", s.ServiceProvider.HTTPCfg().Address())
	err = http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
	if err != nil {
		return err
	}
	return err
}

// runCrashTicker запускает драйвер времени crash: один тикер
// на процесс продвигает все идущие раунды
func (s *App) runCrashTicker(ctx context.Context) {
	serv := s.ServiceProvider.CrashService(ctx)
	interval := s.ServiceProvider.GamesCfg().CrashTickInterval()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				serv.Tick(ctx)
			}
		}
	}()
}
