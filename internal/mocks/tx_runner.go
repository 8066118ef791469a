package mocks

import (
	"context"
	"database/sql"

	"github.com/calverly/taskdeck-api/internal/store"
)

// MockTxRunner implements store.TxRunner for testing. The default behavior
// runs the function directly with a nil transaction; mock stores ignore the
// transaction handle, so the function executes against the mocks unchanged.
type MockTxRunner struct {
	// RunTxFn allows test cases to mock the RunTx behavior
	RunTxFn func(ctx context.Context, fn store.TxFn) error

	// Err is returned without running the function when set
	Err error
}

// RunTx implements the store.TxRunner interface
func (m *MockTxRunner) RunTx(ctx context.Context, fn store.TxFn) error {
	if m.RunTxFn != nil {
		return m.RunTxFn(ctx, fn)
	}
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx, (*sql.Tx)(nil))
}
