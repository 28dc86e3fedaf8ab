package repositories

import "context"

// TxFn runs inside a transaction; repositories called with its ctx join it
type TxFn func(ctx context.Context) error

// TransactionManager runs a function inside one database transaction,
// committing when it returns nil and rolling back otherwise.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
