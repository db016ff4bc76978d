package dice

import (
	"context"
	"errors"
	"testing"
	"time"

	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/repository/game_state_repo"
	"minigames_backend/internal/rng"
	"minigames_backend/internal/service"
	"minigames_backend/internal/service/wallet"

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

type gamesCfgStub struct{}

func (gamesCfgStub) StartingBalance() decimal.Decimal      { return decimal.RequireFromString("1000.00") }
func (gamesCfgStub) MaxBet() decimal.Decimal               { return decimal.RequireFromString("1000.00") }
func (gamesCfgStub) DiceTargetRTP() decimal.Decimal        { return decimal.RequireFromString("0.95") }
func (gamesCfgStub) MinesGridSize() int                    { return 25 }
func (gamesCfgStub) MinesMinCount() int                    { return 1 }
func (gamesCfgStub) MinesMaxCount() int                    { return 24 }
func (gamesCfgStub) CrashTickStep() decimal.Decimal        { return decimal.RequireFromString("0.01") }
func (gamesCfgStub) CrashTickInterval() time.Duration      { return 50 * time.Millisecond }
func (gamesCfgStub) CrashHistorySize() int                 { return 10 }
func (gamesCfgStub) BlackjackDealerStand() int             { return 17 }

const testUserID = 1

func newTestService(startBalance string) (service.DiceService, *userRepoStub) {
	repo := &userRepoStub{balances: map[int]decimal.Decimal{
		testUserID: decimal.RequireFromString(startBalance),
	}}
	serv := NewDiceService(
		wallet.NewWalletService(repo),
		game_state_repo.NewGameStateRepository(),
		txManagerStub{},
		rng.NewSeeded(1),
		gamesCfgStub{},
	)
	return serv, repo
}

var _ repository.UserRepository = (*userRepoStub)(nil)

func TestPlaceSettlesRound(t *testing.T) {
	serv, repo := newTestService("100.00")
	start := repo.balances[testUserID]
	bet := model.DiceBet{
		Amount:    decimal.RequireFromString("10.00"),
		Threshold: 3,
		Direction: model.DiceOver,
	}

	state, err := serv.Place(context.Background(), testUserID, bet)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	if state.Phase != model.DicePhaseResult {
		t.Errorf("phase = %s, want result", state.Phase)
	}
	if state.Roll < 1 || state.Roll > 6 {
		t.Errorf("roll = %d out of [1,6]", state.Roll)
	}
	if !state.Multiplier.Equal(decimal.RequireFromString("1.90")) {
		t.Errorf("multiplier = %s, want 1.90", state.Multiplier)
	}

	want := start.Sub(bet.Amount)
	if state.Win {
		if state.Roll <= bet.Threshold {
			t.Errorf("win with roll %d <= threshold %d", state.Roll, bet.Threshold)
		}
		if !state.Payout.Equal(decimal.RequireFromString("19.00")) {
			t.Errorf("payout = %s, want 19.00", state.Payout)
		}
		want = want.Add(state.Payout)
	} else if !state.Payout.IsZero() {
		t.Errorf("payout = %s on loss, want 0", state.Payout)
	}

	if !state.Balance.Equal(want) {
		t.Errorf("balance = %s, want %s", state.Balance, want)
	}
	if !repo.balances[testUserID].Equal(want) {
		t.Errorf("stored balance = %s, want %s", repo.balances[testUserID], want)
	}
}

func TestPlaceRejectsInvalidBets(t *testing.T) {
	tests := []struct {
		name string
		bet  model.DiceBet
	}{
		{"zero amount", model.DiceBet{Amount: decimal.Zero, Threshold: 3, Direction: model.DiceOver}},
		{"negative amount", model.DiceBet{Amount: decimal.RequireFromString("-5"), Threshold: 3, Direction: model.DiceOver}},
		{"too many decimals", model.DiceBet{Amount: decimal.RequireFromString("1.005"), Threshold: 3, Direction: model.DiceOver}},
		{"above max bet", model.DiceBet{Amount: decimal.RequireFromString("1000.01"), Threshold: 3, Direction: model.DiceOver}},
		{"threshold low", model.DiceBet{Amount: decimal.RequireFromString("1.00"), Threshold: 0, Direction: model.DiceOver}},
		{"threshold high", model.DiceBet{Amount: decimal.RequireFromString("1.00"), Threshold: 7, Direction: model.DiceOver}},
		{"bad direction", model.DiceBet{Amount: decimal.RequireFromString("1.00"), Threshold: 3, Direction: "sideways"}},
		{"impossible win", model.DiceBet{Amount: decimal.RequireFromString("1.00"), Threshold: 6, Direction: model.DiceOver}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serv, repo := newTestService("2000.00")
			start := repo.balances[testUserID]

			_, err := serv.Place(context.Background(), testUserID, tt.bet)
			if !errors.Is(err, model.ErrInvalidParameter) {
				t.Fatalf("Place() error = %v, want ErrInvalidParameter", err)
			}
			if !repo.balances[testUserID].Equal(start) {
				t.Errorf("balance changed on rejected bet: %s", repo.balances[testUserID])
			}
		})
	}
}

func TestPlaceInsufficientBalance(t *testing.T) {
	serv, repo := newTestService("100.00")

	bet := model.DiceBet{
		Amount:    decimal.RequireFromString("500.00"),
		Threshold: 3,
		Direction: model.DiceUnder,
	}
	_, err := serv.Place(context.Background(), testUserID, bet)
	if !errors.Is(err, model.ErrInsufficientBalance) {
		t.Fatalf("Place() error = %v, want ErrInsufficientBalance", err)
	}
	if !repo.balances[testUserID].Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("balance changed on rejected bet: %s", repo.balances[testUserID])
	}
}

func TestStateIdempotent(t *testing.T) {
	serv, _ := newTestService("100.00")
	ctx := context.Background()

	bet := model.DiceBet{
		Amount:    decimal.RequireFromString("5.00"),
		Threshold: 2,
		Direction: model.DiceUnder,
	}
	placed, err := serv.Place(ctx, testUserID, bet)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		state, err := serv.State(ctx, testUserID)
		if err != nil {
			t.Fatalf("State() error = %v", err)
		}
		if state.Roll != placed.Roll || !state.Balance.Equal(placed.Balance) || state.Phase != placed.Phase {
			t.Fatalf("State() diverged from placed state")
		}
	}
}

func TestResetClearsResult(t *testing.T) {
	serv, _ := newTestService("100.00")
	ctx := context.Background()

	bet := model.DiceBet{
		Amount:    decimal.RequireFromString("5.00"),
		Threshold: 2,
		Direction: model.DiceUnder,
	}
	if _, err := serv.Place(ctx, testUserID, bet); err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	state, err := serv.Reset(ctx, testUserID)
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if state.Phase != model.DicePhaseIdle {
		t.Errorf("phase = %s, want idle", state.Phase)
	}
	if state.Roll != 0 {
		t.Errorf("roll = %d after reset, want 0", state.Roll)
	}

	// Повторный сброс из Idle - тихий no-op
	if _, err := serv.Reset(ctx, testUserID); err != nil {
		t.Fatalf("Reset() from idle error = %v", err)
	}
}
