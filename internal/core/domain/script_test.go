package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pocketbtc/utxo-engine/internal/core/domain"
)

func TestParseScriptType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		script   string
		expected domain.ScriptType
	}{
		{"p2pkh pattern", p2pkhScript, domain.ScriptTypeP2PKH},
		{"p2wpkh pattern", p2wpkhScript, domain.ScriptTypeP2WPKH},
		{"p2sh pattern", p2shScript, domain.ScriptTypeP2SH},
		{"op_return is unknown", "6a0b68656c6c6f20776f726c64", domain.ScriptTypeUnknown},
		{"empty script", "", domain.ScriptTypeUnknown},
		{"not hex", "zzzz", domain.ScriptTypeUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.expected, domain.ParseScriptType(tt.script))
		})
	}
}

func TestNewUnspentOutputDerivesScriptTypeOnce(t *testing.T) {
	t.Parallel()

	coin := newCoin(t, 0, 15000, p2wpkhScript)
	require.Equal(t, domain.ScriptTypeP2WPKH, coin.ScriptType)
	require.Equal(t, domain.UnspentKey{TxHash: coin.TxHash, Index: 0}, coin.Key())
}

func TestNewUnspentOutputValidation(t *testing.T) {
	t.Parallel()

	_, err := domain.NewUnspentOutput("nothex", 0, 100, p2pkhScript, 0, "")
	require.ErrorIs(t, err, domain.ErrInvalidTxHash)

	_, err = domain.NewUnspentOutput(validTxHash(t), 0, -1, p2pkhScript, 0, "")
	require.ErrorIs(t, err, domain.ErrNegativeValue)
}

func validTxHash(t *testing.T) string {
	t.Helper()
	return "00000000000000000001a2b3c4d5e6f700000000000000000001a2b3c4d5e6f7"
}
