package application

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/pocketbtc/utxo-engine/pkg/explorer"
)

type mockExplorer struct {
	mock.Mock
}

func (m *mockExplorer) GetBalances(
	ctx context.Context, keys []string,
) (map[string]json.RawMessage, error) {
	args := m.Called(ctx, keys)

	var res map[string]json.RawMessage
	if a := args.Get(0); a != nil {
		res = a.(map[string]json.RawMessage)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetUnspentOutputs(
	ctx context.Context, keys []string,
) ([]explorer.UnspentOutput, error) {
	args := m.Called(ctx, keys)

	var res []explorer.UnspentOutput
	if a := args.Get(0); a != nil {
		res = a.([]explorer.UnspentOutput)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetMultiAddress(
	ctx context.Context, keys []string, txLimit int,
) (*explorer.MultiAddress, error) {
	args := m.Called(ctx, keys, txLimit)

	var res *explorer.MultiAddress
	if a := args.Get(0); a != nil {
		res = a.(*explorer.MultiAddress)
	}
	return res, args.Error(1)
}
