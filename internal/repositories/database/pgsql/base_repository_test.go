package pgsql

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/brewnotes/brewnotes_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTx satisfies pgx.Tx so the commit/rollback error mapping can be
// exercised without a live database.
type stubTx struct {
	commitErr   error
	rollbackErr error
}

var _ pgx.Tx = (*stubTx)(nil)

func (t *stubTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *stubTx) Commit(ctx context.Context) error          { return t.commitErr }
func (t *stubTx) Rollback(ctx context.Context) error        { return t.rollbackErr }
func (t *stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *stubTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *stubTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *stubTx) Conn() *pgx.Conn                                               { return nil }

func TestCommit_Success(t *testing.T) {
	r := &BaseRepository{}

	assert.NoError(t, r.Commit(context.Background(), &stubTx{}))
}

func TestCommit_MapsFailureToAppError(t *testing.T) {
	r := &BaseRepository{}

	err := r.Commit(context.Background(), &stubTx{commitErr: errors.New("connection reset")})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}

func TestRollback_IgnoresAlreadyClosedTx(t *testing.T) {
	// A deferred rollback after a successful commit must stay silent.
	r := &BaseRepository{}

	assert.NoError(t, r.Rollback(context.Background(), &stubTx{rollbackErr: pgx.ErrTxClosed}))
}

func TestRollback_MapsFailureToAppError(t *testing.T) {
	r := &BaseRepository{}

	err := r.Rollback(context.Background(), &stubTx{rollbackErr: errors.New("connection reset")})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}
