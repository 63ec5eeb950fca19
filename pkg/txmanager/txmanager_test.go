package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortafila/CF-BookingService/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr  error
	committed  int
	rolledBack int
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed++
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack++
	return nil
}

type fakeBeginner struct {
	commitErrs []error // ошибка коммита на соответствующую попытку
	txs        []*fakeTx
}

func (b *fakeBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	var commitErr error
	if len(b.txs) < len(b.commitErrs) {
		commitErr = b.commitErrs[len(b.txs)]
	}
	tx := &fakeTx{commitErr: commitErr}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func serializationErr() *pq.Error {
	return &pq.Error{Code: serializationFailure}
}

func TestDoSerializable_RetriesCommitSerializationFailure(t *testing.T) {
	beginner := &fakeBeginner{commitErrs: []error{
		serializationErr(), serializationErr(), serializationErr(),
	}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error { return nil })
	require.Error(t, err)

	assert.Len(t, beginner.txs, maxSerializableRetries)
	assert.ErrorIs(t, err, ErrCommitTx)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, serializationFailure, string(pqErr.Code))
}

func TestDoSerializable_SecondCommitSucceeds(t *testing.T) {
	beginner := &fakeBeginner{commitErrs: []error{serializationErr()}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error { return nil })
	require.NoError(t, err)
	assert.Len(t, beginner.txs, 2)
}

func TestDoSerializable_RetriesStatementSerializationFailure(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			// так репозитории заворачивают ошибку выражения
			return fmt.Errorf("storage: execute query: %w", serializationErr())
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, beginner.txs[0].rolledBack)
}

func TestDoSerializable_NoRetryOnOtherErrors(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	boom := errors.New("boom")
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Len(t, beginner.txs, 1)
}

func TestDo_RollsBackOnFnError(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	err := m.Do(context.Background(), func(ctx context.Context) error { return errors.New("boom") })
	require.Error(t, err)

	require.Len(t, beginner.txs, 1)
	assert.Equal(t, 1, beginner.txs[0].rolledBack)
	assert.Equal(t, 0, beginner.txs[0].committed)
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, isSerializationFailure(serializationErr()))
	assert.True(t, isSerializationFailure(fmt.Errorf("%w: %w", ErrCommitTx, serializationErr())))
	assert.False(t, isSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, isSerializationFailure(errors.New("boom")))
	assert.False(t, isSerializationFailure(nil))
}
