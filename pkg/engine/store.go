package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/wolfpub/wolfpub/pkg/query"
)

// Store is the single database-access port the domain handlers consume.
// Execute runs a batch of statements as one all-or-nothing transaction.
// GetResult runs a single read-only statement. InTx hands the caller an
// externally-managed transaction for workflows where one statement's
// result shapes a later statement (an inserted order id feeding its
// line items).
type Store interface {
	Execute(ctx context.Context, stmts ...query.Statement) (rowsAffected int64, generatedIDs []int64, err error)
	GetResult(ctx context.Context, stmt query.Statement) ([]Row, error)
	InTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx executes statements inside a Store-managed transaction.
type Tx interface {
	Exec(ctx context.Context, stmt query.Statement) (rowsAffected int64, insertedID int64, err error)
	GetResult(ctx context.Context, stmt query.Statement) ([]Row, error)
}

// SQLStore implements Store over a pgx connection pool.
type SQLStore struct {
	connector *Connector
	log       *slog.Logger
}

// NewStore creates a store over an already-configured connector.
func NewStore(connector *Connector, log *slog.Logger) *SQLStore {
	if log == nil {
		log = slog.Default()
	}
	return &SQLStore{connector: connector, log: log}
}

// Execute runs the statements strictly in order inside one transaction.
// On any failure the whole batch is rolled back and a DatabaseError is
// returned. On success it commits once and returns the row count of the
// last statement together with the generated identifier of each
// statement in execution order (zero for statements that generate none).
func (s *SQLStore) Execute(ctx context.Context, stmts ...query.Statement) (int64, []int64, error) {
	if !s.connector.IsConnected() {
		return 0, nil, &DatabaseError{Op: "execute", Err: fmt.Errorf("not connected to database")}
	}

	var (
		affected int64
		ids      []int64
	)
	err := s.InTx(ctx, func(tx Tx) error {
		for _, stmt := range stmts {
			n, id, err := tx.Exec(ctx, stmt)
			if err != nil {
				return err
			}
			affected = n
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return affected, ids, nil
}

// GetResult executes a single read-only statement and materializes the
// rows as column-name → value maps. The connection goes back to the
// pool even on failure.
func (s *SQLStore) GetResult(ctx context.Context, stmt query.Statement) ([]Row, error) {
	if !s.connector.IsConnected() {
		return nil, &DatabaseError{Op: "query", Err: fmt.Errorf("not connected to database")}
	}

	s.log.Debug("executing query", "sql", stmt.SQL)
	rows, err := s.connector.Pool().Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, mapDatabaseError(err, "query")
	}
	defer rows.Close()

	result, err := scanRows(rows)
	if err != nil {
		return nil, mapDatabaseError(err, "query")
	}
	return result, nil
}

// InTx opens one transaction, runs fn, and commits only when fn returns
// nil. Any failure rolls the whole transaction back.
func (s *SQLStore) InTx(ctx context.Context, fn func(tx Tx) error) error {
	if !s.connector.IsConnected() {
		return &DatabaseError{Op: "execute", Err: fmt.Errorf("not connected to database")}
	}

	pgtx, err := s.connector.Pool().Begin(ctx)
	if err != nil {
		return mapDatabaseError(err, "execute")
	}
	defer pgtx.Rollback(ctx) // no-op after commit

	if err := fn(&sqlTx{tx: pgtx, log: s.log}); err != nil {
		return err
	}

	if err := pgtx.Commit(ctx); err != nil {
		return mapDatabaseError(err, "execute")
	}
	return nil
}

type sqlTx struct {
	tx  pgx.Tx
	log *slog.Logger
}

// Exec runs one statement inside the transaction. For an INSERT built
// with a RETURNING clause it reports the last generated identifier.
func (t *sqlTx) Exec(ctx context.Context, stmt query.Statement) (int64, int64, error) {
	t.log.Debug("executing statement", "sql", stmt.SQL)

	if stmt.Returning == "" {
		tag, err := t.tx.Exec(ctx, stmt.SQL, stmt.Args...)
		if err != nil {
			return 0, 0, mapDatabaseError(err, "execute")
		}
		return tag.RowsAffected(), 0, nil
	}

	rows, err := t.tx.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return 0, 0, mapDatabaseError(err, "execute")
	}
	defer rows.Close()

	var (
		affected int64
		lastID   int64
	)
	for rows.Next() {
		if err := rows.Scan(&lastID); err != nil {
			return 0, 0, mapDatabaseError(err, "execute")
		}
		affected++
	}
	if err := rows.Err(); err != nil {
		return 0, 0, mapDatabaseError(err, "execute")
	}
	return affected, lastID, nil
}

func (t *sqlTx) GetResult(ctx context.Context, stmt query.Statement) ([]Row, error) {
	t.log.Debug("executing query", "sql", stmt.SQL)
	rows, err := t.tx.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, mapDatabaseError(err, "query")
	}
	defer rows.Close()

	result, err := scanRows(rows)
	if err != nil {
		return nil, mapDatabaseError(err, "query")
	}
	return result, nil
}

// scanRows converts pgx rows into Row maps using the driver-reported
// column names.
func scanRows(rows pgx.Rows) ([]Row, error) {
	var result []Row
	columns := rows.FieldDescriptions()

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			row[col.Name] = values[i]
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
