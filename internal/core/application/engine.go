package application

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/pocketbtc/utxo-engine/internal/core/domain"
	"github.com/pocketbtc/utxo-engine/pkg/explorer"
)

// Engine ties the balance, unspent and history services together over a fixed
// account list for one wallet session. It is the single entry point the
// outer layers consume.
type Engine struct {
	sessionID string
	chain     domain.Chain
	accounts  []domain.Account

	balanceSvc *BalanceService
	unspentSvc *UnspentService
	historySvc *HistoryService
}

func NewEngine(
	chain domain.Chain,
	accounts []domain.Account,
	explorerSvc explorer.Service,
	cacheExpiry time.Duration,
) (*Engine, error) {
	balanceSvc, err := NewBalanceService(chain, explorerSvc)
	if err != nil {
		return nil, err
	}
	unspentSvc, err := NewUnspentService(chain, explorerSvc, cacheExpiry)
	if err != nil {
		return nil, err
	}
	historySvc, err := NewHistoryService(chain, explorerSvc, cacheExpiry)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New().String()
	log.WithFields(log.Fields{
		"session":  sessionID,
		"chain":    chain.Name,
		"accounts": len(accounts),
	}).Debug("engine session started")

	return &Engine{
		sessionID:  sessionID,
		chain:      chain,
		accounts:   accounts,
		balanceSvc: balanceSvc,
		unspentSvc: unspentSvc,
		historySvc: historySvc,
	}, nil
}

// SessionID identifies this engine instance in logs.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Chain returns the chain this engine operates on.
func (e *Engine) Chain() domain.Chain {
	return e.chain
}

// TotalBalance is the confirmed balance summed over all non-archived
// accounts.
func (e *Engine) TotalBalance(ctx context.Context) (btcutil.Amount, error) {
	wallet, err := e.balanceSvc.WalletBalance(ctx, domain.ActiveKeys(e.accounts))
	if err != nil {
		return 0, err
	}
	return wallet.Total(), nil
}

// AccountBalance returns the balance of the account at the given index, with
// ok=false when the indexer has never seen any of its keys.
func (e *Engine) AccountBalance(
	ctx context.Context, accountIndex uint32,
) (btcutil.Amount, bool, error) {
	account, err := e.account(accountIndex)
	if err != nil {
		return 0, false, err
	}
	return e.balanceSvc.AccountBalance(ctx, *account)
}

// FetchUnspentOutputs returns the spendable outputs over all non-archived
// accounts.
func (e *Engine) FetchUnspentOutputs(
	ctx context.Context,
) ([]domain.UnspentOutput, error) {
	return e.unspentSvc.UnspentOutputs(ctx, domain.ActiveKeys(e.accounts))
}

// BuildSpendPlan selects coins over the wallet's current unspent set that
// cover the target amount plus fees at the given rate. The plan is a pure
// function of the unspent snapshot: calling it twice without a cache flush
// yields identical plans.
func (e *Engine) BuildSpendPlan(
	ctx context.Context,
	target btcutil.Amount,
	feePerByte uint64,
	strategy domain.CoinSortStrategy,
) (*domain.SpendPlan, error) {
	coins, err := e.FetchUnspentOutputs(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := domain.SelectCoins(e.chain, domain.CoinSelectionInputs{
		Target:           target,
		FeePerByte:       feePerByte,
		Coins:            coins,
		TargetScriptType: domain.ScriptTypeP2PKH,
		ChangeScriptType: e.chain.ChangeScriptType,
		Strategy:         strategy,
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"session": e.sessionID,
		"inputs":  len(plan.SelectedInputs),
		"fee":     plan.FeePaid,
		"change":  plan.ChangeValue,
	}).Debug("built spend plan")

	return plan, nil
}

// SweepPlan builds the plan spending every economical output to a single
// destination. A wallet with nothing worth sweeping yields an empty plan.
func (e *Engine) SweepPlan(
	ctx context.Context, feePerByte uint64,
) (*domain.SpendPlan, error) {
	coins, err := e.FetchUnspentOutputs(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SelectAllCoins(
		e.chain, coins, feePerByte, domain.ScriptTypeP2PKH,
	), nil
}

// Transactions returns the first page of wallet history, newest first.
func (e *Engine) Transactions(
	ctx context.Context,
) ([]domain.HistoricalTransaction, error) {
	return e.historySvc.Transactions(ctx, domain.ActiveKeys(e.accounts))
}

// Transaction looks up one history entry by hash.
func (e *Engine) Transaction(
	ctx context.Context, id string,
) (*domain.HistoricalTransaction, error) {
	return e.historySvc.Transaction(ctx, domain.ActiveKeys(e.accounts), id)
}

// Close flushes the session caches. The engine is still usable afterwards,
// subsequent lookups simply hit the explorer again.
func (e *Engine) Close() {
	e.unspentSvc.FlushCache()
	e.historySvc.FlushCache()
	log.WithField("session", e.sessionID).Debug("engine session closed")
}

func (e *Engine) account(index uint32) (*domain.Account, error) {
	for i := range e.accounts {
		if e.accounts[i].Index == index {
			return &e.accounts[i], nil
		}
	}
	return nil, fmt.Errorf("account with index %d not found", index)
}
