package blackjack

import (
	"context"
	"errors"
	"testing"
	"time"

	"minigames_backend/internal/model"
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

const testUserID = 1

func newTestService(seed int64) (service.BlackjackService, *userRepoStub) {
	repo := &userRepoStub{balances: map[int]decimal.Decimal{
		testUserID: decimal.RequireFromString("100.00"),
	}}
	serv := NewBlackjackService(
		wallet.NewWalletService(repo),
		game_state_repo.NewGameStateRepository(),
		txManagerStub{},
		rng.NewSeeded(seed),
		gamesCfgStub{},
	)
	return serv, repo
}

func TestPlaceDealsInitialHands(t *testing.T) {
	serv, repo := newTestService(1)

	state, err := serv.Place(context.Background(), testUserID, decimal.RequireFromString("10.00"))
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	if state.Phase != model.BlackjackPhasePlayerTurn {
		t.Errorf("phase = %s, want player_turn", state.Phase)
	}
	if len(state.Player) != 2 || len(state.Dealer) != 2 {
		t.Errorf("hands = %d/%d cards, want 2/2", len(state.Player), len(state.Dealer))
	}
	if len(state.Deck) != 48 {
		t.Errorf("deck remainder = %d, want 48", len(state.Deck))
	}
	if state.PlayerScore != handScore(state.Player) {
		t.Errorf("player score = %d, want %d", state.PlayerScore, handScore(state.Player))
	}
	// До хода дилера наружу отдается счет только открытой карты
	if state.DealerScore != handScore(state.Dealer[:1]) {
		t.Errorf("dealer score = %d, want %d", state.DealerScore, handScore(state.Dealer[:1]))
	}
	if !repo.balances[testUserID].Equal(decimal.RequireFromString("90.00")) {
		t.Errorf("balance = %s, want 90.00", repo.balances[testUserID])
	}
}

func TestHitUntilBustLoses(t *testing.T) {
	serv, repo := newTestService(1)
	ctx := context.Background()

	state, err := serv.Place(ctx, testUserID, decimal.RequireFromString("10.00"))
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	// Добор заканчивает ход игрока только перебором
	for state.Phase == model.BlackjackPhasePlayerTurn {
		if state, err = serv.Hit(ctx, testUserID); err != nil {
			t.Fatalf("Hit() error = %v", err)
		}
	}

	if state.PlayerScore <= 21 {
		t.Fatalf("hand finished without bust: score %d", state.PlayerScore)
	}
	if state.Result != model.ResultLoss {
		t.Errorf("result = %s, want loss", state.Result)
	}
	if !repo.balances[testUserID].Equal(decimal.RequireFromString("90.00")) {
		t.Errorf("balance = %s after bust, want 90.00", repo.balances[testUserID])
	}
}

func TestStandSettlesHand(t *testing.T) {
	serv, repo := newTestService(2)
	ctx := context.Background()

	bet := decimal.RequireFromString("10.00")
	if _, err := serv.Place(ctx, testUserID, bet); err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	state, err := serv.Stand(ctx, testUserID)
	if err != nil {
		t.Fatalf("Stand() error = %v", err)
	}

	if state.Phase != model.BlackjackPhaseFinished {
		t.Errorf("phase = %s, want finished", state.Phase)
	}
	if state.DealerScore < 17 {
		t.Errorf("dealer stopped below 17: %d", state.DealerScore)
	}
	if state.DealerScore != handScore(state.Dealer) {
		t.Errorf("dealer score = %d, want %d", state.DealerScore, handScore(state.Dealer))
	}

	start := decimal.RequireFromString("90.00")
	var want decimal.Decimal
	switch state.Result {
	case model.ResultWin:
		want = start.Add(bet.Mul(decimal.NewFromInt(2)))
	case model.ResultPush:
		want = start.Add(bet)
	default:
		want = start
	}
	if !state.Payout.Equal(repo.balances[testUserID].Sub(start)) {
		t.Errorf("payout %s does not match credited amount %s", state.Payout, repo.balances[testUserID].Sub(start))
	}
	if !repo.balances[testUserID].Equal(want) {
		t.Errorf("balance = %s, want %s for %s", repo.balances[testUserID], want, state.Result)
	}
}

func TestActionsOutsidePlayerTurnRejected(t *testing.T) {
	serv, _ := newTestService(1)
	ctx := context.Background()

	if _, err := serv.Hit(ctx, testUserID); !errors.Is(err, model.ErrInvalidTransition) {
		t.Errorf("Hit() before deal error = %v, want ErrInvalidTransition", err)
	}
	if _, err := serv.Stand(ctx, testUserID); !errors.Is(err, model.ErrInvalidTransition) {
		t.Errorf("Stand() before deal error = %v, want ErrInvalidTransition", err)
	}
}

func TestResetReturnsToBetting(t *testing.T) {
	serv, _ := newTestService(1)
	ctx := context.Background()

	if _, err := serv.Place(ctx, testUserID, decimal.RequireFromString("10.00")); err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	// Сброс посреди раздачи отклоняется
	if _, err := serv.Reset(ctx, testUserID); !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("Reset() mid-hand error = %v, want ErrInvalidTransition", err)
	}

	if _, err := serv.Stand(ctx, testUserID); err != nil {
		t.Fatalf("Stand() error = %v", err)
	}

	state, err := serv.Reset(ctx, testUserID)
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if state.Phase != model.BlackjackPhaseBetting {
		t.Errorf("phase = %s, want betting", state.Phase)
	}
	if len(state.Player) != 0 || len(state.Dealer) != 0 {
		t.Errorf("hands not cleared after reset")
	}
}
