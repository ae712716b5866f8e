package handlers

import (
	"context"

	"github.com/wolfpub/wolfpub/pkg/engine"
	"github.com/wolfpub/wolfpub/pkg/query"
)

// fakeStore scripts the engine.Store port: reads pop from queryResults
// in call order, batches are recorded, and transactions run against a
// shared fakeTx.
type fakeStore struct {
	queries      []query.Statement
	queryResults [][]engine.Row
	queryErr     error

	batches  [][]query.Statement
	affected int64
	ids      []int64
	execErr  error

	tx    fakeTx
	txErr error
}

func (f *fakeStore) GetResult(ctx context.Context, stmt query.Statement) ([]engine.Row, error) {
	f.queries = append(f.queries, stmt)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if len(f.queryResults) == 0 {
		return nil, nil
	}
	rows := f.queryResults[0]
	f.queryResults = f.queryResults[1:]
	return rows, nil
}

func (f *fakeStore) Execute(ctx context.Context, stmts ...query.Statement) (int64, []int64, error) {
	f.batches = append(f.batches, stmts)
	if f.execErr != nil {
		return 0, nil, f.execErr
	}
	ids := f.ids
	if ids == nil {
		ids = make([]int64, len(stmts))
	}
	return f.affected, ids, nil
}

func (f *fakeStore) InTx(ctx context.Context, fn func(tx engine.Tx) error) error {
	if f.txErr != nil {
		return f.txErr
	}
	return fn(&f.tx)
}

type txResult struct {
	affected int64
	id       int64
	err      error
}

// fakeTx records executed statements and pops one scripted result per
// Exec; when the script runs out it reports one affected row.
type fakeTx struct {
	stmts   []query.Statement
	results []txResult
}

func (t *fakeTx) Exec(ctx context.Context, stmt query.Statement) (int64, int64, error) {
	t.stmts = append(t.stmts, stmt)
	if len(t.results) == 0 {
		return 1, 0, nil
	}
	r := t.results[0]
	t.results = t.results[1:]
	return r.affected, r.id, r.err
}

func (t *fakeTx) GetResult(ctx context.Context, stmt query.Statement) ([]engine.Row, error) {
	t.stmts = append(t.stmts, stmt)
	return nil, nil
}
