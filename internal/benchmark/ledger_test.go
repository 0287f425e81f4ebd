package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_WriteAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "wasm_pk_gen.csv")

	ledger, err := NewLedger(path)
	require.NoError(t, err)

	require.NoError(t, ledger.Write(Record{Name: "add_mean_param_message_2_carry_2_compact_pk", Value: 2_500_000}))
	require.NoError(t, ledger.Write(Record{Name: "mul_mean_param_message_2_carry_2_compact_pk", Value: 0}))
	assert.Equal(t, 2, ledger.Lines())
	require.NoError(t, ledger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"add_mean_param_message_2_carry_2_compact_pk,2500000\n"+
			"mul_mean_param_message_2_carry_2_compact_pk,0\n",
		string(data))
}

func TestLedger_TruncatesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale,1\nstale,2\n"), 0644))

	ledger, err := NewLedger(path)
	require.NoError(t, err)
	require.NoError(t, ledger.Write(Record{Name: "fresh", Value: 3}))
	require.NoError(t, ledger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh,3\n", string(data))
}

func TestLedger_EmptyRunLeavesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale,1\n"), 0644))

	ledger, err := NewLedger(path)
	require.NoError(t, err)
	require.NoError(t, ledger.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestLedger_CreateFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	// A regular file cannot act as a parent directory.
	_, err := NewLedger(filepath.Join(blocker, "ledger.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}

func TestLedger_CloseAfterFileClosed(t *testing.T) {
	ledger, err := NewLedger(filepath.Join(t.TempDir(), "ledger.csv"))
	require.NoError(t, err)
	require.NoError(t, ledger.Write(Record{Name: "add", Value: 1}))

	// Closing the descriptor underneath makes the buffered flush fail.
	require.NoError(t, ledger.f.Close())
	err = ledger.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}
