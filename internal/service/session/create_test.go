package session

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"minigames_backend/internal/model"
	"minigames_backend/pkg/token"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

type txManagerStub struct{}

func (txManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (txManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type userRepoStub struct {
	balances map[int]decimal.Decimal
}

func (r *userRepoStub) CreateUser(_ context.Context, user *model.User) (int, error) {
	id := len(r.balances) + 1
	r.balances[id] = user.Balance
	return id, nil
}

func (r *userRepoStub) GetBalance(_ context.Context, id int) (decimal.Decimal, error) {
	return r.balances[id], nil
}

func (r *userRepoStub) UpdateBalance(_ context.Context, id int, amount decimal.Decimal) error {
	r.balances[id] = amount
	return nil
}

type sessionRepoStub struct {
	sessions map[string]*model.Session
}

func (r *sessionRepoStub) CreateSession(_ context.Context, session *model.Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *sessionRepoStub) GetUserIDBySessionID(_ context.Context, sessionID string) (int, error) {
	session, ok := r.sessions[sessionID]
	if !ok {
		return 0, errors.New("session not found")
	}
	return session.UserID, nil
}

func (r *sessionRepoStub) DeleteSession(_ context.Context, sessionID string) error {
	delete(r.sessions, sessionID)
	return nil
}

type jwtCfgStub struct{}

func (jwtCfgStub) AccessTokenSecretKey() []byte       { return []byte("test-secret") }
func (jwtCfgStub) AccessTokenDuration() time.Duration { return time.Hour }
func (jwtCfgStub) SessionDuration() time.Duration     { return 24 * time.Hour }

type gamesCfgStub struct{}

func (gamesCfgStub) StartingBalance() decimal.Decimal { return decimal.RequireFromString("1000.00") }
func (gamesCfgStub) MaxBet() decimal.Decimal          { return decimal.RequireFromString("1000.00") }
func (gamesCfgStub) DiceTargetRTP() decimal.Decimal   { return decimal.RequireFromString("0.95") }
func (gamesCfgStub) MinesGridSize() int               { return 25 }
func (gamesCfgStub) MinesMinCount() int               { return 1 }
func (gamesCfgStub) MinesMaxCount() int               { return 24 }
func (gamesCfgStub) CrashTickStep() decimal.Decimal   { return decimal.RequireFromString("0.01") }
func (gamesCfgStub) CrashTickInterval() time.Duration { return 50 * time.Millisecond }
func (gamesCfgStub) CrashHistorySize() int            { return 10 }
func (gamesCfgStub) BlackjackDealerStand() int        { return 17 }

func newTestService() (*serv, *userRepoStub, *sessionRepoStub) {
	users := &userRepoStub{balances: make(map[int]decimal.Decimal)}
	sessions := &sessionRepoStub{sessions: make(map[string]*model.Session)}
	s := &serv{
		userRepo:    users,
		sessionRepo: sessions,
		txManager:   txManagerStub{},
		jwtCfg:      jwtCfgStub{},
		gamesCfg:    gamesCfgStub{},
	}
	return s, users, sessions
}

func TestCreateOpensSession(t *testing.T) {
	s, users, sessions := newTestService()

	data, err := s.Create(context.Background(), "player one")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if !data.User.Balance.Equal(decimal.RequireFromString("1000.00")) {
		t.Errorf("starting balance = %s, want 1000.00", data.User.Balance)
	}
	if !users.balances[data.User.ID].Equal(data.User.Balance) {
		t.Errorf("stored balance = %s, want %s", users.balances[data.User.ID], data.User.Balance)
	}

	session, ok := sessions.sessions[data.SessionID]
	if !ok {
		t.Fatal("session not stored")
	}
	if session.UserID != data.User.ID {
		t.Errorf("session user = %d, want %d", session.UserID, data.User.ID)
	}
	if session.ExpiresAt.Before(time.Now()) {
		t.Error("session already expired")
	}

	claims, err := token.VerifyToken(data.AccessToken, jwtCfgStub{}.AccessTokenSecretKey())
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if claims.ID != strconv.Itoa(data.User.ID) {
		t.Errorf("token subject = %s, want %d", claims.ID, data.User.ID)
	}
}

func TestCreateRejectsEmptyName(t *testing.T) {
	s, _, _ := newTestService()

	for _, name := range []string{"", "   "} {
		_, err := s.Create(context.Background(), name)
		if !errors.Is(err, model.ErrInvalidParameter) {
			t.Errorf("Create(%q) error = %v, want ErrInvalidParameter", name, err)
		}
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	s, _, sessions := newTestService()

	data, err := s.Create(context.Background(), "player")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := s.Logout(context.Background(), data.SessionID); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, ok := sessions.sessions[data.SessionID]; ok {
		t.Error("session survived logout")
	}
}
