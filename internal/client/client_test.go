package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"envelope/internal/ledger"
	"envelope/internal/server"
	"envelope/internal/store"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	eng := ledger.New(ledger.Snapshot{}, store.NewMemory())
	ts := httptest.NewServer(server.New(eng, ":0", zap.NewNop().Sugar()).Handler())
	t.Cleanup(ts.Close)
	return New(ts.URL)
}

func TestClientFlow(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	cat, err := c.CreateCategory(ctx, "Food")
	require.NoError(t, err)
	assert.Equal(t, "Food", cat.Name)

	_, err = c.CreateCategory(ctx, "Transport")
	require.NoError(t, err)

	result, err := c.AddTransaction(ctx, "Food", 100, "budget", ledger.TypeDeposit)
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Balance)

	transfer, err := c.Transfer(ctx, "Food", "Transport", 20)
	require.NoError(t, err)
	assert.Equal(t, 80.0, transfer.FromBalance)
	assert.Equal(t, 20.0, transfer.ToBalance)

	cats, err := c.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, 80.0, cats[0].Balance)

	txns, err := c.ListTransactions(ctx, "Transport")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, ledger.TypeTransferIn, txns[0].Type)

	body, err := c.ExportReport(ctx, "csv", true, "all", "", "")
	require.NoError(t, err)
	assert.Contains(t, string(body), "Total Balance,100.00")

	require.NoError(t, c.DeleteCategory(ctx, "Food"))
	txns, err = c.ListTransactions(ctx, "")
	require.NoError(t, err)
	require.Len(t, txns, 1)

	require.NoError(t, c.Ping(ctx))
}

func TestClientServerErrors(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		_, err := c.AddTransaction(ctx, "Nope", 10, "", ledger.TypeDeposit)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("insufficient funds message", func(t *testing.T) {
		_, err := c.CreateCategory(ctx, "Food")
		require.NoError(t, err)

		_, err = c.AddTransaction(ctx, "Food", 50, "", ledger.TypeWithdraw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient funds")
	})
}
